// maxops/types/preferences.go
package types

// PreferencePatch carries the updatable subset of a user's preference bag.
// Pointer fields distinguish "not sent" from zero values on PATCH.
type PreferencePatch struct {
	Model         *string  `json:"model,omitempty"`
	ResponseStyle *string  `json:"response_style,omitempty"`
	VoiceEnabled  *bool    `json:"voice_enabled,omitempty"`
	SoundEnabled  *bool    `json:"sound_enabled,omitempty"`
	VoiceID       *string  `json:"voice_id,omitempty"`
	VoiceSpeed    *float64 `json:"voice_speed,omitempty"`
	AIThemeColor  *string  `json:"aiThemeColor,omitempty"`
	MaxTokens     *int     `json:"max_tokens,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	NavPinned     *bool    `json:"nav_pinned,omitempty"`
	PanelSizes    *string  `json:"panel_sizes,omitempty"` // serialized panel-size map
}
