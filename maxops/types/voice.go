// maxops/types/voice.go
package types

// TranscriptionResponse is returned by POST /voice.
type TranscriptionResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
}

// SpeechRequest is the body of POST /text-to-speech.
type SpeechRequest struct {
	Text  string  `json:"text"`
	Voice string  `json:"voice"`
	Speed float64 `json:"speed"`
}
