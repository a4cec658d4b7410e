// maxops/services/speech/transcribe.go
package speech

import (
	"context"
	"fmt"
	"io"

	"maxops/maxops/utils/httputils"
	"maxops/maxops/utils/logging"
)

// Transcriber sends captured audio to a speech-to-text provider.
type Transcriber struct {
	baseURL string
}

func NewTranscriber(baseURL string) *Transcriber {
	return &Transcriber{baseURL: baseURL}
}

type sttResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads one audio clip and returns the recognized text.
func (t *Transcriber) Transcribe(ctx context.Context, fileName string, audio io.Reader) (string, error) {
	defer logging.LogDuration(ctx, "speech_transcribe")()

	if t.baseURL == "" {
		return "", fmt.Errorf("no speech-to-text provider configured")
	}
	var resp sttResponse
	err := httputils.PostMultipartFile(ctx, t.baseURL+"/transcriptions", "file", fileName, audio, &resp)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
