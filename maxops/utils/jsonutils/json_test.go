package jsonutils

import (
	"encoding/json"
	"testing"
)

func TestExtractJSONFencedBlock(t *testing.T) {
	input := "Sure, here you go:\n```json\n{\"a\": 1}\n```\nLet me know if you need more."
	got := ExtractJSON(input)
	if got != `{"a": 1}` {
		t.Errorf("got %q", got)
	}
}

func TestExtractJSONRawObject(t *testing.T) {
	input := `prefix {"type": "navigate", "target": "/jobs"} suffix`
	got := ExtractJSON(input)
	if !json.Valid([]byte(got)) {
		t.Fatalf("extracted invalid json: %q", got)
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(got), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["target"] != "/jobs" {
		t.Errorf("wrong object extracted: %v", m)
	}
}

func TestExtractJSONRepairsTrailingCommas(t *testing.T) {
	got := ExtractJSON(`{"items": [1, 2, 3,], "done": true,}`)
	if !json.Valid([]byte(got)) {
		t.Errorf("trailing commas not repaired: %q", got)
	}
}

func TestExtractJSONStripsInvisibleRunes(t *testing.T) {
	got := ExtractJSON("\uFEFF{\"a\":\u200B 1}")
	if !json.Valid([]byte(got)) {
		t.Errorf("invisible runes not stripped: %q", got)
	}
}
