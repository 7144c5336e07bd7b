package routes

import (
	"encoding/json"
	"net/http"

	"gachi/gachi/controllers"
	"gachi/gachi/middlewares"
)

// generic wrapper to reduce boilerplate
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			if status == 0 {
				status = controllers.StatusFor(err)
			}
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(res)
	}
}

func authedEmail(r *http.Request) (string, error) {
	email, ok := middlewares.EmailFrom(r.Context())
	if !ok {
		return "", controllers.ErrNotAuthenticated
	}
	return email, nil
}
