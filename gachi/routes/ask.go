package routes

import (
	"encoding/json"
	"net/http"
	"time"

	"gachi/gachi/config"
	"gachi/gachi/controllers"
	"gachi/gachi/middlewares"
	"gachi/gachi/types"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func AskRoutes(ctrl *controllers.AskController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))
		gr.Use(httprate.LimitByIP(30, time.Minute))

		gr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
			email, err := authedEmail(r)
			if err != nil {
				return nil, 0, err
			}
			var req types.AskRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			answer, err := ctrl.Ask(r.Context(), email, req)
			if err != nil {
				return nil, 0, err
			}
			return map[string]string{"answer": answer}, http.StatusOK, nil
		}))
	})

	return r
}
