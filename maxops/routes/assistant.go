// maxops/routes/assistant.go
package routes

import (
	"encoding/json"
	"net/http"

	"maxops/maxops/config"
	"maxops/maxops/controllers"
	"maxops/maxops/middlewares"
	"maxops/maxops/types"

	"github.com/go-chi/chi/v5"
)

func AssistantRoutes(ctrl *controllers.AssistantController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		// POST /chat : send one prompt, get content plus optional directive
		gr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.ChatRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			userID, ok := requestUserID(r)
			if !ok {
				return nil, http.StatusUnauthorized, nil
			}
			resp, err := ctrl.Chat(r.Context(), userID, req)
			if err != nil {
				if err.Error() == "empty message" {
					return nil, http.StatusBadRequest, err
				}
				return nil, http.StatusInternalServerError, err
			}
			return resp, http.StatusOK, nil
		}))

		// GET /chat/session/{session_id}/messages : persisted transcript
		gr.Get("/session/{session_id}/messages", handleJSON(func(r *http.Request) (any, int, error) {
			userID, ok := requestUserID(r)
			if !ok {
				return nil, http.StatusUnauthorized, nil
			}
			sessionID := chi.URLParam(r, "session_id")
			msgs, err := ctrl.GetMessagesForSession(r.Context(), userID, sessionID)
			if err != nil {
				if err.Error() == "session not found or forbidden" {
					return nil, http.StatusNotFound, err
				}
				return nil, http.StatusInternalServerError, err
			}
			return msgs, http.StatusOK, nil
		}))

		// GET /chat/agents : available responders
		gr.Get("/agents", handleJSON(func(r *http.Request) (any, int, error) {
			return ctrl.Agents(), http.StatusOK, nil
		}))
	})
	return r
}
