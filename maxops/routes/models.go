// maxops/routes/models.go
package routes

import (
	"net/http"

	"maxops/maxops/controllers"

	"github.com/go-chi/chi/v5"
)

func ModelsRoutes(ctrl *controllers.ModelsController) chi.Router {
	r := chi.NewRouter()
	// GET /models : upstream registry or the fixed fallback list
	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		return ctrl.List(r.Context()), http.StatusOK, nil
	}))
	return r
}
