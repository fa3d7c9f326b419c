package routes

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/socratmhamad/quiz-socfix/app"
	"github.com/socratmhamad/quiz-socfix/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	api.With(middlewares.MaybeAuthenticated(app.TokenSecret)).
		Get("/quizzes", ListQuizzes(app))
	api.Get("/quizzes/{id}", GetQuizById(app))
	api.With(middlewares.Authenticated(app.TokenSecret)).
		Post("/quizzes/{id}/submissions", SubmitQuiz(app))
	api.Get("/settings/system-title", GetSystemTitle(app))

	api.Route("/admin", func(r chi.Router) {
		r.Use(middlewares.Authenticated(app.TokenSecret))

		// CRUD quiz
		r.Post("/quizzes", CreateQuiz(app))
		r.Put("/quizzes/{id}", UpdateQuiz(app))
		r.Delete("/quizzes/{id}", DeleteQuiz(app))

		r.Get("/stats", GetStats(app))
		r.Get("/submissions", GetSubmissions(app))
		r.Put("/settings/system-title", UpdateSystemTitle(app))
	})

	return api
}
