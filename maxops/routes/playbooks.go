// maxops/routes/playbooks.go
package routes

import (
	"net/http"
	"strconv"

	"maxops/maxops/config"
	"maxops/maxops/controllers"
	"maxops/maxops/middlewares"

	"github.com/go-chi/chi/v5"
)

func PlaybooksRoutes(ctrl *controllers.PlaybooksController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
			if q := r.URL.Query().Get("q"); q != "" {
				limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
				pbs, err := ctrl.Search(r.Context(), q, limit)
				if err != nil {
					return nil, http.StatusInternalServerError, err
				}
				return pbs, http.StatusOK, nil
			}
			pbs, err := ctrl.List(r.Context())
			if err != nil {
				return nil, http.StatusInternalServerError, err
			}
			return pbs, http.StatusOK, nil
		}))
	})
	return r
}
