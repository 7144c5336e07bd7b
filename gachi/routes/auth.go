package routes

import (
	"encoding/json"
	"net/http"

	"gachi/gachi/config"
	"gachi/gachi/controllers"
	"gachi/gachi/middlewares"
	"gachi/gachi/types"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(ctrl *controllers.AuthController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		result, err := ctrl.Register(r.Context(), req)
		if err != nil {
			return nil, 0, err
		}
		return result, http.StatusCreated, nil
	}))

	r.Post("/login", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		result, err := ctrl.Login(r.Context(), req)
		if err != nil {
			return nil, 0, err
		}
		return result, http.StatusOK, nil
	}))

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Put("/password", handleJSON(func(r *http.Request) (any, int, error) {
			email, err := authedEmail(r)
			if err != nil {
				return nil, 0, err
			}
			var req types.PasswordChangeRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			if err := ctrl.ChangePassword(r.Context(), email, req); err != nil {
				return nil, 0, err
			}
			return map[string]string{"message": "비밀번호가 변경되었습니다."}, http.StatusOK, nil
		}))
	})

	return r
}
