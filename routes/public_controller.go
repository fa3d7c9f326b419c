package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/socratmhamad/quiz-socfix/app"
	"github.com/socratmhamad/quiz-socfix/httpx"
	"github.com/socratmhamad/quiz-socfix/log"
	"github.com/socratmhamad/quiz-socfix/routes/middlewares"
)

func ListQuizzes(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := middlewares.RequestPrincipal(r)
		quizzes, err := app.Quiz.ListQuizzes(r.Context(), principal)
		if err != nil {
			httpx.LogServiceError(w, "quiz.list", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"quizzes": quizzes,
		})
	}
}

func GetQuizById(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizId := chi.URLParam(r, "id")

		quiz, err := app.Quiz.GetQuiz(r.Context(), quizId)
		if err != nil {
			httpx.LogServiceError(w, "quiz.get", err)
			return
		}

		render.JSON(w, r, quiz)
	}
}

func SubmitQuiz(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizId := chi.URLParam(r, "id")

		payload := struct {
			Answers []int `json:"answers"`
			// Accepted for wire compatibility; the ledger records the
			// verified email from the token, never this field.
			StudentEmail string `json:"studentEmail"`
		}{}
		err := render.DecodeJSON(r.Body, &payload)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		principal := middlewares.RequestPrincipal(r)
		result, err := app.Quiz.Submit(r.Context(), principal, quizId, payload.Answers)
		if err != nil {
			httpx.LogServiceError(w, "quiz.submit", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, result)
	}
}

func GetSystemTitle(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title, err := app.Quiz.SystemTitle(r.Context())
		if err != nil {
			httpx.LogServiceError(w, "settings.get_title", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"title": title,
		})
	}
}
