// maxops/routes/events.go
package routes

import (
	"encoding/json"
	"net/http"

	"maxops/maxops/config"
	"maxops/maxops/events"
	"maxops/maxops/middlewares"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
)

// EventsRoutes serves the websocket change feed. Connected surfaces receive
// preference and layout events as they are published, instead of polling the
// preference endpoint.
func EventsRoutes(bus *events.Bus, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		ctx := r.Context()

		// first frame is the auth token
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		if typ != websocket.MessageText {
			conn.Close(websocket.StatusUnsupportedData, "unsupported data")
			return
		}
		var hello struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(data, &hello); err != nil {
			conn.Write(ctx, websocket.MessageText, []byte(`{"error":"invalid json"}`))
			return
		}
		userID, ok := middlewares.ParseUserID(cfg, hello.Token)
		if !ok {
			conn.Write(ctx, websocket.MessageText, []byte(`{"error":"invalid token"}`))
			conn.Close(websocket.StatusPolicyViolation, "invalid token")
			return
		}

		ch, cancel := bus.Subscribe(userID)
		defer cancel()

		for {
			select {
			case <-ctx.Done():
				conn.Close(websocket.StatusNormalClosure, "")
				return
			case ev, open := <-ch:
				if !open {
					conn.Close(websocket.StatusNormalClosure, "")
					return
				}
				payload, err := json.Marshal(ev)
				if err != nil {
					continue
				}
				if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
					return
				}
			}
		}
	})
	return r
}
