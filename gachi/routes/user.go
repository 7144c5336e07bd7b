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

func UserRoutes(ctrl *controllers.UserController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Get("/me", handleJSON(func(r *http.Request) (any, int, error) {
			email, err := authedEmail(r)
			if err != nil {
				return nil, 0, err
			}
			user, err := ctrl.GetMe(r.Context(), email)
			if err != nil {
				return nil, 0, err
			}
			return user, http.StatusOK, nil
		}))

		gr.Delete("/me", handleJSON(func(r *http.Request) (any, int, error) {
			email, err := authedEmail(r)
			if err != nil {
				return nil, 0, err
			}
			if err := ctrl.DeleteMe(r.Context(), email); err != nil {
				return nil, 0, err
			}
			return map[string]string{"message": "회원 탈퇴가 완료되었습니다."}, http.StatusOK, nil
		}))

		gr.Get("/me/settings", handleJSON(func(r *http.Request) (any, int, error) {
			email, err := authedEmail(r)
			if err != nil {
				return nil, 0, err
			}
			setting, err := ctrl.GetSettings(r.Context(), email)
			if err != nil {
				return nil, 0, err
			}
			return setting, http.StatusOK, nil
		}))

		gr.Put("/me/settings", handleJSON(func(r *http.Request) (any, int, error) {
			email, err := authedEmail(r)
			if err != nil {
				return nil, 0, err
			}
			var req types.UpdateSettingRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			setting, err := ctrl.UpdateSettings(r.Context(), email, req)
			if err != nil {
				return nil, 0, err
			}
			return setting, http.StatusOK, nil
		}))
	})

	return r
}
