// maxops/services/speech/tts.go
package speech

import (
	"context"
	"fmt"

	"maxops/maxops/utils/httputils"
	"maxops/maxops/utils/logging"

	"go.uber.org/zap"
)

// Synthesizer converts assistant text to audio. A primary provider is tried
// first; when it fails the fallback endpoint takes over, so a provider outage
// degrades voice quality instead of silencing the assistant.
type Synthesizer struct {
	baseURL     string
	fallbackURL string
	apiKey      string
}

func NewSynthesizer(baseURL, fallbackURL, apiKey string) *Synthesizer {
	return &Synthesizer{baseURL: baseURL, fallbackURL: fallbackURL, apiKey: apiKey}
}

type ttsRequest struct {
	Text  string  `json:"text"`
	Voice string  `json:"voice"`
	Speed float64 `json:"speed"`
}

// Synthesize returns encoded audio bytes for the given text.
func (s *Synthesizer) Synthesize(ctx context.Context, text, voice string, speed float64) ([]byte, error) {
	defer logging.LogDuration(ctx, "speech_synthesize")()

	if speed <= 0 {
		speed = 1
	}
	req := ttsRequest{Text: text, Voice: voice, Speed: speed}

	if s.baseURL != "" {
		audio, err := httputils.PostBinary(ctx, s.baseURL+"/speech", req, s.headers())
		if err == nil {
			return audio, nil
		}
		// honor an explicit abort; only provider failures fall through
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logging.ErrorLogger.Error("tts primary provider failed", zap.Error(err))
	}
	if s.fallbackURL != "" {
		return httputils.PostBinary(ctx, s.fallbackURL+"/speech", req, s.headers())
	}
	return nil, fmt.Errorf("no text-to-speech provider available")
}

func (s *Synthesizer) headers() map[string]string {
	if s.apiKey == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + s.apiKey}
}
