// maxops/routes/preferences.go
package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"maxops/maxops/config"
	"maxops/maxops/controllers"
	"maxops/maxops/middlewares"
	"maxops/maxops/types"

	"github.com/go-chi/chi/v5"
)

func PreferencesRoutes(ctrl *controllers.PreferencesController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		// GET /user-preferences/{user_id}
		gr.Get("/{user_id}", handleJSON(func(r *http.Request) (any, int, error) {
			id, authed, status, err := preferenceTarget(r)
			if err != nil {
				return nil, status, err
			}
			if !authed {
				return nil, http.StatusForbidden, fmt.Errorf("forbidden")
			}
			pref, err := ctrl.Get(r.Context(), id)
			if err != nil {
				return nil, http.StatusInternalServerError, err
			}
			return pref, http.StatusOK, nil
		}))

		// PATCH /user-preferences/{user_id}
		gr.Patch("/{user_id}", handleJSON(func(r *http.Request) (any, int, error) {
			id, authed, status, err := preferenceTarget(r)
			if err != nil {
				return nil, status, err
			}
			if !authed {
				return nil, http.StatusForbidden, fmt.Errorf("forbidden")
			}
			var patch types.PreferencePatch
			if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
				return nil, http.StatusBadRequest, err
			}
			pref, err := ctrl.Patch(r.Context(), id, patch)
			if err != nil {
				return nil, http.StatusInternalServerError, err
			}
			return pref, http.StatusOK, nil
		}))
	})
	return r
}

// preferenceTarget resolves the {user_id} path param and checks it matches
// the authenticated caller.
func preferenceTarget(r *http.Request) (id int, authed bool, status int, err error) {
	id, err = strconv.Atoi(chi.URLParam(r, "user_id"))
	if err != nil {
		return 0, false, http.StatusBadRequest, err
	}
	callerID, ok := r.Context().Value(middlewares.UserIDKey).(int)
	if !ok {
		return 0, false, http.StatusUnauthorized, fmt.Errorf("unauthorized")
	}
	return id, callerID == id, http.StatusOK, nil
}
