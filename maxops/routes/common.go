package routes

import (
	"encoding/json"
	"net/http"

	"maxops/maxops/middlewares"
)

// generic wrapper to reduce boilerplate
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(res)
	}
}

func requestUserID(r *http.Request) (int, bool) {
	id, ok := r.Context().Value(middlewares.UserIDKey).(int)
	return id, ok
}
