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

func QuestionRoutes(ctrl *controllers.QuestionController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
			email, err := authedEmail(r)
			if err != nil {
				return nil, 0, err
			}
			questions, err := ctrl.History(r.Context(), email)
			if err != nil {
				return nil, 0, err
			}
			return questions, http.StatusOK, nil
		}))

		gr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
			email, err := authedEmail(r)
			if err != nil {
				return nil, 0, err
			}
			var req types.SaveQuestionRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			saved, err := ctrl.Save(r.Context(), email, req)
			if err != nil {
				return nil, 0, err
			}
			if saved == nil {
				return map[string]string{"message": "저장 생략됨"}, http.StatusOK, nil
			}
			return saved, http.StatusCreated, nil
		}))

		gr.Delete("/", handleJSON(func(r *http.Request) (any, int, error) {
			email, err := authedEmail(r)
			if err != nil {
				return nil, 0, err
			}
			deleted, err := ctrl.DeleteAll(r.Context(), email)
			if err != nil {
				return nil, 0, err
			}
			return map[string]any{"message": "질문이 모두 삭제되었습니다.", "deleted": deleted}, http.StatusOK, nil
		}))

		gr.Get("/count", handleJSON(func(r *http.Request) (any, int, error) {
			email, err := authedEmail(r)
			if err != nil {
				return nil, 0, err
			}
			count, err := ctrl.CountToday(r.Context(), email)
			if err != nil {
				return nil, 0, err
			}
			return map[string]int64{"count": count}, http.StatusOK, nil
		}))
	})

	return r
}
