// maxops/session/client.go
package session

import (
	"bytes"
	"context"
	"fmt"

	"maxops/maxops/types"
	"maxops/maxops/utils/httputils"
)

// Client talks to the assistant gateway on behalf of one signed-in user.
type Client struct {
	baseURL string
	token   string
}

func NewClient(baseURL, token string) *Client {
	return &Client{baseURL: baseURL, token: token}
}

func (c *Client) headers() map[string]string {
	return map[string]string{"Authorization": "Bearer " + c.token}
}

// Chat submits a prompt. The call is bound to ctx; cancelling it aborts the
// request and surfaces context.Canceled, which the lifecycle controller
// turns into a cancellation notice rather than an error.
func (c *Client) Chat(ctx context.Context, req types.ChatRequest) (types.ChatResponse, error) {
	var resp types.ChatResponse
	err := httputils.PostJSONContext(ctx, c.baseURL+"/chat", req, &resp, c.headers())
	return resp, err
}

// Transcribe uploads recorded audio and returns the recognized text.
func (c *Client) Transcribe(ctx context.Context, fileName string, audio []byte) (types.TranscriptionResponse, error) {
	var resp types.TranscriptionResponse
	err := httputils.PostMultipartFile(ctx, c.baseURL+"/voice", "audio", fileName, bytes.NewReader(audio), &resp)
	return resp, err
}

// Synthesize converts text to spoken audio.
func (c *Client) Synthesize(ctx context.Context, req types.SpeechRequest) ([]byte, error) {
	return httputils.PostBinary(ctx, c.baseURL+"/text-to-speech", req, c.headers())
}

// AgentInfo is one roster entry as served by the gateway.
type AgentInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// AgentsInfo describes the agent lineup and the voice auto-play policy.
// VoiceAutoplayExcluded feeds NewPlayer so every surface honors the same
// roster configuration.
type AgentsInfo struct {
	Agents                []AgentInfo `json:"agents"`
	DefaultAgent          string      `json:"default_agent"`
	VoiceAutoplayExcluded []string    `json:"voice_autoplay_excluded"`
}

// Agents fetches the roster.
func (c *Client) Agents(ctx context.Context) (AgentsInfo, error) {
	var info AgentsInfo
	err := httputils.GetJSON(ctx, c.baseURL+"/chat/agents", &info, c.headers())
	return info, err
}

// ListModels returns the available models, falling back to the hard-coded
// list when the gateway is unreachable or returns nothing. Model pickers
// always have something to show.
func (c *Client) ListModels(ctx context.Context) []types.ModelInfo {
	var resp types.ModelsResponse
	if err := httputils.GetJSON(ctx, c.baseURL+"/models", &resp, nil); err != nil {
		return types.FallbackModels
	}
	if len(resp.Models) == 0 {
		return types.FallbackModels
	}
	return resp.Models
}

// CreateWidget pins a chart or table produced by a directive to the
// dashboard.
func (c *Client) CreateWidget(ctx context.Context, req types.WidgetRequest) error {
	return httputils.PostJSONContext(ctx, c.baseURL+"/widgets", req, nil, c.headers())
}

// preferenceWire mirrors the gateway's preference JSON: snake_case fields
// except the camelCase theme color, matching the server-side preference bag
// and its PATCH shape.
type preferenceWire struct {
	Model        *string  `json:"model,omitempty"`
	SoundEnabled *bool    `json:"sound_enabled,omitempty"`
	VoiceID      *string  `json:"voice_id,omitempty"`
	VoiceSpeed   *float64 `json:"voice_speed,omitempty"`
	AIThemeColor *string  `json:"aiThemeColor,omitempty"`
}

func settingsToWire(s Settings) preferenceWire {
	return preferenceWire{
		Model:        s.Model,
		SoundEnabled: s.SoundEnabled,
		VoiceID:      s.Voice,
		VoiceSpeed:   s.VoiceSpeed,
		AIThemeColor: s.AIThemeColor,
	}
}

// wireToSettings keeps only fields the server has a real value for. The
// gateway serializes its whole bag, so zero values (empty voice, speed 0)
// read as unset rather than overriding local choices in the merge.
func wireToSettings(w preferenceWire) Settings {
	var s Settings
	s.SoundEnabled = w.SoundEnabled
	if w.VoiceSpeed != nil && *w.VoiceSpeed > 0 {
		s.VoiceSpeed = w.VoiceSpeed
	}
	if w.VoiceID != nil && *w.VoiceID != "" {
		s.Voice = w.VoiceID
	}
	if w.AIThemeColor != nil && *w.AIThemeColor != "" {
		s.AIThemeColor = w.AIThemeColor
	}
	if w.Model != nil && *w.Model != "" {
		s.Model = w.Model
	}
	return s
}

// GetPreferences fetches the server-side copy of the user's settings.
func (c *Client) GetPreferences(ctx context.Context, userID int) (Settings, error) {
	var w preferenceWire
	if err := httputils.GetJSON(ctx, preferenceURL(c.baseURL, userID), &w, c.headers()); err != nil {
		return Settings{}, err
	}
	return wireToSettings(w), nil
}

// PatchPreferences pushes changed fields to the server. Unset fields are
// omitted so the server keeps its values for them.
func (c *Client) PatchPreferences(ctx context.Context, userID int, patch Settings) error {
	return httputils.PatchJSONContext(ctx, preferenceURL(c.baseURL, userID), settingsToWire(patch), nil, c.headers())
}

func preferenceURL(base string, userID int) string {
	return fmt.Sprintf("%s/user-preferences/%d", base, userID)
}
