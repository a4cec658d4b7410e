package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrepareAttachmentText(t *testing.T) {
	wire, err := PrepareAttachment(Attachment{
		Name:        "jobs.csv",
		ContentType: "text/csv",
		Payload:     []byte("job,line\nJ-1,2"),
	})
	require.NoError(t, err)
	require.Equal(t, "jobs.csv", wire.Name)
	require.Equal(t, "job,line\nJ-1,2", wire.Content)
	require.Empty(t, wire.URL)
	require.NotEmpty(t, wire.ID)
	require.Equal(t, int64(14), wire.Size)
}

func TestPrepareAttachmentHTMLStripsMarkup(t *testing.T) {
	html := `<html><head><style>body{color:red}</style></head>
<body><h1>Shift Report</h1><script>alert(1)</script><p>Line 2 down 40 minutes.</p></body></html>`
	wire, err := PrepareAttachment(Attachment{
		Name:        "report.html",
		ContentType: "text/html",
		Payload:     []byte(html),
	})
	require.NoError(t, err)
	require.Contains(t, wire.Content, "Shift Report")
	require.Contains(t, wire.Content, "Line 2 down 40 minutes.")
	require.NotContains(t, wire.Content, "alert(1)")
	require.NotContains(t, wire.Content, "color:red")
	require.NotContains(t, wire.Content, "<h1>")
}

func TestPrepareAttachmentImageBecomesDataURL(t *testing.T) {
	wire, err := PrepareAttachment(Attachment{
		Name:        "gauge.png",
		ContentType: "image/png",
		Payload:     []byte{0x89, 0x50, 0x4e, 0x47},
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(wire.URL, "data:image/png;base64,"))
	require.Empty(t, wire.Content)
}

func TestPrepareAttachmentRejectsUnsupportedType(t *testing.T) {
	_, err := PrepareAttachment(Attachment{
		Name:        "firmware.bin",
		ContentType: "application/octet-stream",
		Payload:     []byte{0x00},
	})
	require.Error(t, err)
}

func TestPrepareAttachmentRejectsOversizedPayload(t *testing.T) {
	_, err := PrepareAttachment(Attachment{
		Name:        "huge.txt",
		ContentType: "text/plain",
		Payload:     bytes.Repeat([]byte("a"), maxAttachmentBytes+1),
	})
	require.Error(t, err)
}
