// maxops/routes/widgets.go
package routes

import (
	"encoding/json"
	"net/http"

	"maxops/maxops/config"
	"maxops/maxops/controllers"
	"maxops/maxops/middlewares"
	"maxops/maxops/types"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func WidgetsRoutes(ctrl *controllers.WidgetsController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
			userID, ok := requestUserID(r)
			if !ok {
				return nil, http.StatusUnauthorized, nil
			}
			var req types.WidgetRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			w, err := ctrl.Create(r.Context(), userID, req)
			if err != nil {
				return nil, http.StatusBadRequest, err
			}
			return w, http.StatusCreated, nil
		}))

		gr.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
			userID, ok := requestUserID(r)
			if !ok {
				return nil, http.StatusUnauthorized, nil
			}
			ws, err := ctrl.List(r.Context(), userID)
			if err != nil {
				return nil, http.StatusInternalServerError, err
			}
			return ws, http.StatusOK, nil
		}))

		gr.Delete("/{widget_id}", func(w http.ResponseWriter, r *http.Request) {
			userID, ok := requestUserID(r)
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			id, err := uuid.Parse(chi.URLParam(r, "widget_id"))
			if err != nil {
				http.Error(w, "invalid widget id", http.StatusBadRequest)
				return
			}
			if err := ctrl.Delete(r.Context(), userID, id); err != nil {
				if err == gorm.ErrRecordNotFound {
					http.Error(w, "widget not found", http.StatusNotFound)
				} else {
					http.Error(w, err.Error(), http.StatusInternalServerError)
				}
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})
	return r
}
