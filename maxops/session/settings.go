// maxops/session/settings.go
package session

import (
	"encoding/json"
)

const settingsKey = "assistant-settings"

// Settings holds per-user assistant preferences. Pointer fields distinguish
// "explicitly set" from "absent" so merging layers can tell silence apart
// from an opt-out.
type Settings struct {
	SoundEnabled *bool    `json:"soundEnabled,omitempty"`
	VoiceSpeed   *float64 `json:"voiceSpeed,omitempty"`
	Voice        *string  `json:"voice,omitempty"`
	AIThemeColor *string  `json:"aiThemeColor,omitempty"`
	Model        *string  `json:"model,omitempty"`
}

// DefaultSettings returns the baseline every merge starts from.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled: boolPtr(true),
		VoiceSpeed:   floatPtr(1.0),
		Voice:        strPtr("alloy"),
		AIThemeColor: strPtr("#6366f1"),
	}
}

// MergeSettings layers local on top of defaults and remote on top of local.
// Remote wins every field it sets; in particular a remote theme color
// overrides anything chosen locally so the branding stays consistent across
// devices. The inputs are not modified.
func MergeSettings(defaults, local, remote Settings) Settings {
	out := overlay(defaults, local)
	return overlay(out, remote)
}

func overlay(base, top Settings) Settings {
	if top.SoundEnabled != nil {
		base.SoundEnabled = top.SoundEnabled
	}
	if top.VoiceSpeed != nil {
		base.VoiceSpeed = top.VoiceSpeed
	}
	if top.Voice != nil {
		base.Voice = top.Voice
	}
	if top.AIThemeColor != nil {
		base.AIThemeColor = top.AIThemeColor
	}
	if top.Model != nil {
		base.Model = top.Model
	}
	return base
}

// LoadSettings reads stored settings, applying the one-time sound migration:
// an older build wrote soundEnabled:false as its own default, silencing users
// who never chose that. A stored false with no migration marker flips back to
// true once and the marker is persisted so a deliberate opt-out afterwards
// sticks.
func LoadSettings(store Store) Settings {
	raw, ok := store.Get(settingsKey)
	if !ok {
		return Settings{}
	}
	var stored struct {
		Settings
		SoundMigrated bool `json:"soundMigrated,omitempty"`
	}
	if err := json.Unmarshal(raw, &stored); err != nil {
		return Settings{}
	}
	s := stored.Settings
	if !stored.SoundMigrated {
		if s.SoundEnabled != nil && !*s.SoundEnabled {
			s.SoundEnabled = boolPtr(true)
		}
		SaveSettings(store, s)
	}
	return s
}

// SaveSettings persists settings with the migration marker set.
func SaveSettings(store Store, s Settings) error {
	stored := struct {
		Settings
		SoundMigrated bool `json:"soundMigrated"`
	}{Settings: s, SoundMigrated: true}
	raw, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	return store.Set(settingsKey, raw)
}

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }
