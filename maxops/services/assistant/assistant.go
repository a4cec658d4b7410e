// maxops/services/assistant/assistant.go
package assistant

import (
	"context"

	"maxops/maxops/services/llm"
	"maxops/maxops/sources/psql/dao"
	"maxops/maxops/sources/psql/models"
	"maxops/maxops/types"
	"maxops/maxops/utils/logging"

	"go.uber.org/zap"
)

const historyWindow = 20

// Service produces assistant replies: it persists the conversation, grounds
// the prompt in playbooks, runs the model and extracts at most one directive.
type Service struct {
	llm         *llm.Client
	chatDAO     *dao.ChatMessageDAO
	playbookDAO *dao.PlaybookDAO
	prefDAO     *dao.PreferenceDAO
	roster      *Roster
}

func NewService(llmClient *llm.Client, chatDAO *dao.ChatMessageDAO, playbookDAO *dao.PlaybookDAO, prefDAO *dao.PreferenceDAO, roster *Roster) *Service {
	return &Service{
		llm:         llmClient,
		chatDAO:     chatDAO,
		playbookDAO: playbookDAO,
		prefDAO:     prefDAO,
		roster:      roster,
	}
}

func (s *Service) Roster() *Roster {
	return s.roster
}

// Respond handles one chat turn. The user message is persisted before the
// model call so the transcript survives a provider failure; the assistant
// reply is persisted with agent attribution before returning.
func (s *Service) Respond(ctx context.Context, userID int, req types.ChatRequest) (*types.ChatResponse, error) {
	defer logging.LogDuration(ctx, "assistant_respond")()

	sessionID := req.Context.SessionID
	if sessionID == "" {
		sessionID = s.chatDAO.CreateSessionID()
	}
	agent := s.roster.Find(req.Context.AgentID)

	userMsg := &models.ChatMessage{
		SessionID: sessionID,
		UserID:    userID,
		Role:      types.RoleUser,
		Source:    req.Context.Source,
		Content:   req.Message,
	}
	if err := s.chatDAO.SaveMessage(ctx, userMsg); err != nil {
		return nil, err
	}

	history, err := s.chatDAO.GetRecentBySession(ctx, sessionID, historyWindow)
	if err != nil {
		return nil, err
	}

	playbooks, err := s.playbookDAO.Search(ctx, req.Message, promptPlaybookLimit)
	if err != nil {
		// grounding is best-effort; answer without playbooks
		logging.ErrorLogger.Error("playbook search failed", zap.Error(err))
		playbooks = nil
	}

	messages := []llm.Message{
		{Role: "system", Content: buildSystemPrompt(agent, req.Context, playbooks)},
	}
	for _, m := range history {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}
	for _, att := range req.Attachments {
		if att.Content != "" {
			messages = append(messages, llm.Message{
				Role:    "user",
				Content: "Attached file " + att.Name + ":\n" + att.Content,
			})
		}
	}

	opts := llm.Options{}
	if pref, err := s.prefDAO.Get(ctx, userID); err == nil {
		opts.Model = pref.Model
		opts.MaxTokens = pref.MaxTokens
		opts.Temperature = pref.Temperature
	}

	raw, err := s.llm.Run(ctx, messages, opts)
	if err != nil {
		return nil, err
	}

	content, action := ParseReply(raw)
	if content == "" && action != nil {
		content = ConfirmationText(action)
	}

	assistantMsg := &models.ChatMessage{
		SessionID: sessionID,
		UserID:    userID,
		Role:      types.RoleAssistant,
		Source:    req.Context.Source,
		AgentID:   agent.ID,
		AgentName: agent.Name,
		Content:   content,
	}
	if err := s.chatDAO.SaveMessage(ctx, assistantMsg); err != nil {
		return nil, err
	}

	return &types.ChatResponse{
		Content:   content,
		Action:    action,
		AgentID:   agent.ID,
		AgentName: agent.Name,
		SessionID: sessionID,
	}, nil
}
