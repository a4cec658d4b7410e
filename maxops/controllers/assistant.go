// maxops/controllers/assistant.go
package controllers

import (
	"context"
	"fmt"

	"maxops/maxops/services/assistant"
	"maxops/maxops/sources/psql/dao"
	"maxops/maxops/sources/storage"
	"maxops/maxops/types"
	"maxops/maxops/utils/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AssistantController struct {
	svc     *assistant.Service
	chatDAO *dao.ChatMessageDAO
	store   *storage.MinIOClient
}

func NewAssistantController(svc *assistant.Service, chatDAO *dao.ChatMessageDAO, store *storage.MinIOClient) *AssistantController {
	return &AssistantController{svc: svc, chatDAO: chatDAO, store: store}
}

// Chat handles one prompt. Empty prompts are rejected unless at least one
// attachment came along.
func (c *AssistantController) Chat(ctx context.Context, userID int, req types.ChatRequest) (*types.ChatResponse, error) {
	if req.Message == "" && len(req.Attachments) == 0 {
		return nil, fmt.Errorf("empty message")
	}
	for i := range req.Attachments {
		c.archiveAttachment(ctx, &req.Attachments[i])
	}
	return c.svc.Respond(ctx, userID, req)
}

// archiveAttachment stores the attachment payload (data-URL images or decoded
// text) in the object store for audit. Failures are logged, not fatal; the
// chat turn proceeds without the archive copy.
func (c *AssistantController) archiveAttachment(ctx context.Context, att *types.ChatAttachment) {
	if c.store == nil {
		return
	}
	if att.ID == "" {
		att.ID = uuid.New().String()
	}
	var payload []byte
	switch {
	case att.Content != "":
		payload = []byte(att.Content)
	case att.URL != "":
		payload = []byte(att.URL)
	default:
		return
	}
	if _, err := c.store.UploadAttachment(ctx, att.ID, att.Name, att.Type, payload); err != nil {
		logging.ErrorLogger.Error("attachment archive failed",
			zap.String("attachment", att.Name), zap.Error(err))
	}
}

// GetMessagesForSession returns the persisted transcript for one session.
func (c *AssistantController) GetMessagesForSession(ctx context.Context, userID int, sessionID string) ([]types.ChatMessageView, error) {
	msgs, err := c.chatDAO.GetHistoryBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	views := make([]types.ChatMessageView, 0, len(msgs))
	for _, m := range msgs {
		if m.UserID != userID {
			return nil, fmt.Errorf("session not found or forbidden")
		}
		views = append(views, types.ChatMessageView{
			ID:        m.ID.String(),
			Role:      m.Role,
			Content:   m.Content,
			Source:    m.Source,
			AgentID:   m.AgentID,
			AgentName: m.AgentName,
			CreatedAt: m.CreatedAt,
		})
	}
	return views, nil
}

// AgentsView describes the roster to clients: the lineup plus the voice
// auto-play policy, so every surface applies the same exclusion list.
type AgentsView struct {
	Agents                []assistant.Agent `json:"agents"`
	DefaultAgent          string            `json:"default_agent"`
	VoiceAutoplayExcluded []string          `json:"voice_autoplay_excluded"`
}

func (c *AssistantController) Agents() AgentsView {
	roster := c.svc.Roster()
	return AgentsView{
		Agents:                roster.Agents,
		DefaultAgent:          roster.DefaultAgent,
		VoiceAutoplayExcluded: roster.VoiceAutoplayExcluded,
	}
}
