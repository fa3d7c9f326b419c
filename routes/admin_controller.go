package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/socratmhamad/quiz-socfix/app"
	"github.com/socratmhamad/quiz-socfix/httpx"
	"github.com/socratmhamad/quiz-socfix/log"
	"github.com/socratmhamad/quiz-socfix/model"
	"github.com/socratmhamad/quiz-socfix/routes/middlewares"
)

type quizPayload struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []model.Question `json:"questions"`
}

func CreateQuiz(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := quizPayload{}
		err := render.DecodeJSON(r.Body, &payload)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		principal := middlewares.RequestPrincipal(r)
		id, err := app.Quiz.CreateQuiz(r.Context(), principal, payload.Title, payload.Description, payload.Questions)
		if err != nil {
			httpx.LogServiceError(w, "quiz.create", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id": id,
		})
	}
}

func UpdateQuiz(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizId := chi.URLParam(r, "id")

		payload := quizPayload{}
		err := render.DecodeJSON(r.Body, &payload)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		principal := middlewares.RequestPrincipal(r)
		err = app.Quiz.UpdateQuiz(r.Context(), principal, quizId, payload.Title, payload.Description, payload.Questions)
		if err != nil {
			httpx.LogServiceError(w, "quiz.update", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteQuiz(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizId := chi.URLParam(r, "id")

		principal := middlewares.RequestPrincipal(r)
		err := app.Quiz.DeleteQuiz(r.Context(), principal, quizId)
		if err != nil {
			httpx.LogServiceError(w, "quiz.delete", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetStats(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := middlewares.RequestPrincipal(r)
		stats, err := app.Quiz.Stats(r.Context(), principal)
		if err != nil {
			httpx.LogServiceError(w, "stats.get", err)
			return
		}

		render.JSON(w, r, stats)
	}
}

func GetSubmissions(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := middlewares.RequestPrincipal(r)
		subs, err := app.Quiz.RecentSubmissions(r.Context(), principal)
		if err != nil {
			httpx.LogServiceError(w, "submissions.get", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"submissions": subs,
		})
	}
}

func UpdateSystemTitle(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := struct {
			Title string `json:"title"`
		}{}
		err := render.DecodeJSON(r.Body, &payload)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		principal := middlewares.RequestPrincipal(r)
		err = app.Quiz.SetSystemTitle(r.Context(), principal, payload.Title)
		if err != nil {
			httpx.LogServiceError(w, "settings.update_title", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
