package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"gachi/gachi/config"
	"gachi/gachi/controllers"
	"gachi/gachi/middlewares"
	"gachi/gachi/types"

	"github.com/go-chi/chi/v5"
)

func AdminRoutes(ctrl *controllers.AdminController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Get("/users", handleJSON(func(r *http.Request) (any, int, error) {
			email, err := authedEmail(r)
			if err != nil {
				return nil, 0, err
			}
			users, err := ctrl.ListUsers(r.Context(), email)
			if err != nil {
				return nil, 0, err
			}
			return users, http.StatusOK, nil
		}))

		gr.Put("/plan", handleJSON(func(r *http.Request) (any, int, error) {
			email, err := authedEmail(r)
			if err != nil {
				return nil, 0, err
			}
			var req types.UpdatePlanRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			if req.Email == "" || req.Plan == "" {
				return nil, http.StatusBadRequest, errors.New("이메일 또는 플랜이 누락되었습니다")
			}
			user, err := ctrl.UpdatePlan(r.Context(), email, req)
			if err != nil {
				return nil, 0, err
			}
			return user, http.StatusOK, nil
		}))
	})

	return r
}
