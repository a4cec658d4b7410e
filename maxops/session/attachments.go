// maxops/session/attachments.go
package session

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"maxops/maxops/types"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

// Attachment is a file staged for the next chat request. Text-like payloads
// travel as extracted text, images as data URLs; anything else is rejected
// up front rather than silently dropped server-side.
type Attachment struct {
	Name        string
	ContentType string
	Payload     []byte
}

const maxAttachmentBytes = 10 << 20

// PrepareAttachment converts a staged file into its wire form.
func PrepareAttachment(a Attachment) (types.ChatAttachment, error) {
	if len(a.Payload) > maxAttachmentBytes {
		return types.ChatAttachment{}, fmt.Errorf("attachment %q exceeds 10MB limit", a.Name)
	}
	wire := types.ChatAttachment{
		ID:   uuid.NewString(),
		Name: a.Name,
		Type: a.ContentType,
		Size: int64(len(a.Payload)),
	}
	switch {
	case isTextType(a.ContentType):
		wire.Content = string(a.Payload)
	case isHTMLType(a.ContentType):
		text, err := extractHTMLText(a.Payload)
		if err != nil {
			return types.ChatAttachment{}, fmt.Errorf("parse html attachment %q: %w", a.Name, err)
		}
		wire.Content = text
	case strings.HasPrefix(a.ContentType, "image/"):
		wire.URL = "data:" + a.ContentType + ";base64," + base64.StdEncoding.EncodeToString(a.Payload)
	default:
		return types.ChatAttachment{}, fmt.Errorf("unsupported attachment type %q", a.ContentType)
	}
	return wire, nil
}

func isTextType(ct string) bool {
	switch {
	case strings.HasPrefix(ct, "text/html"):
		return false
	case strings.HasPrefix(ct, "text/"):
		return true
	case ct == "application/json", ct == "application/xml", ct == "application/x-yaml":
		return true
	}
	return false
}

func isHTMLType(ct string) bool {
	return strings.HasPrefix(ct, "text/html") || ct == "application/xhtml+xml"
}

// extractHTMLText strips markup and script/style bodies, keeping readable
// text only.
func extractHTMLText(payload []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript").Remove()
	var parts []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		if t := strings.TrimSpace(line); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n"), nil
}
