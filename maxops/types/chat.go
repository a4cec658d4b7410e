// maxops/types/chat.go
package types

// Message roles on the wire.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Origin surfaces a message can be sent from.
const (
	SourcePanel          = "panel"
	SourceFloatingBubble = "floating-bubble"
)

// ChatContext carries the client-side situation along with a prompt.
type ChatContext struct {
	Route     string            `json:"route,omitempty"`
	AgentID   string            `json:"agent_id,omitempty"`
	Source    string            `json:"source,omitempty"`
	Domain    map[string]string `json:"domain,omitempty"`
	SessionID string            `json:"session_id,omitempty"`
}

// ChatAttachment is the wire form of a file attached to a prompt.
type ChatAttachment struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Size    int64  `json:"size"`
	Content string `json:"content,omitempty"`
	URL     string `json:"url,omitempty"`
}

type ChatRequest struct {
	Message     string           `json:"message"`
	Context     ChatContext      `json:"context"`
	Attachments []ChatAttachment `json:"attachments,omitempty"`
}

// ChatResponse is what POST /chat returns. Older clients read "message",
// newer ones read "content"; both carry the same text.
type ChatResponse struct {
	Content   string    `json:"content,omitempty"`
	Message   string    `json:"message,omitempty"`
	Action    *Action   `json:"action,omitempty"`
	AgentID   string    `json:"agentId,omitempty"`
	AgentName string    `json:"agentName,omitempty"`
	Insights  []Insight `json:"insights,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
}

// Text returns whichever of the two content fields is populated.
func (r ChatResponse) Text() string {
	if r.Content != "" {
		return r.Content
	}
	return r.Message
}

// Insight is a short observation the assistant attaches to a reply.
type Insight struct {
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Severity string `json:"severity,omitempty"`
}
