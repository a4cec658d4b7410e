// maxops/routes/voice.go
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

const maxAudioUpload = 25 << 20 // 25 MB

func VoiceRoutes(ctrl *controllers.VoiceController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		// POST /voice : multipart audio -> {success, text}
		gr.Post("/", func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseMultipartForm(maxAudioUpload); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			file, header, err := r.FormFile("audio")
			if err != nil {
				http.Error(w, "missing audio file", http.StatusBadRequest)
				return
			}
			defer file.Close()
			resp := ctrl.Transcribe(r.Context(), header.Filename, file)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(resp)
		})
	})
	return r
}

// TextToSpeechRoutes serves synthesis at the top-level /text-to-speech path.
func TextToSpeechRoutes(ctrl *controllers.VoiceController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		// POST /text-to-speech : {text, voice, speed} -> binary audio
		gr.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var req types.SpeechRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if req.Text == "" {
				http.Error(w, "text required", http.StatusBadRequest)
				return
			}
			audio, err := ctrl.Speak(r.Context(), req)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadGateway)
				return
			}
			w.Header().Set("Content-Type", "audio/mpeg")
			w.Write(audio)
		})
	})
	return r
}
