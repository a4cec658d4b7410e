// maxops/controllers/voice.go
package controllers

import (
	"context"
	"io"

	"maxops/maxops/services/speech"
	"maxops/maxops/types"
)

type VoiceController struct {
	transcriber *speech.Transcriber
	synthesizer *speech.Synthesizer
}

func NewVoiceController(transcriber *speech.Transcriber, synthesizer *speech.Synthesizer) *VoiceController {
	return &VoiceController{transcriber: transcriber, synthesizer: synthesizer}
}

// Transcribe turns one uploaded audio clip into text. Provider failures come
// back as success=false rather than an error so the panel can degrade to
// typed input.
func (c *VoiceController) Transcribe(ctx context.Context, fileName string, audio io.Reader) types.TranscriptionResponse {
	text, err := c.transcriber.Transcribe(ctx, fileName, audio)
	if err != nil {
		return types.TranscriptionResponse{Success: false}
	}
	return types.TranscriptionResponse{Success: true, Text: text}
}

// Speak synthesizes audio for assistant text.
func (c *VoiceController) Speak(ctx context.Context, req types.SpeechRequest) ([]byte, error) {
	return c.synthesizer.Synthesize(ctx, req.Text, req.Voice, req.Speed)
}
