package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/socratmhamad/quiz-socfix/app"
	"github.com/socratmhamad/quiz-socfix/config"
	"github.com/socratmhamad/quiz-socfix/database"
	"github.com/socratmhamad/quiz-socfix/httpx"
	"github.com/socratmhamad/quiz-socfix/log"
	"github.com/socratmhamad/quiz-socfix/quiz"
	"github.com/socratmhamad/quiz-socfix/routes"
	"github.com/socratmhamad/quiz-socfix/store"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	if cfg.AuthorPassword != "" {
		err = database.EnsureUser(db, cfg.AuthorUser, cfg.AuthorPassword, cfg.AuthorEmail)
		if err != nil {
			log.Fatal("main.db.ensure_author:", err)
		}
	}

	service := quiz.NewService(
		store.NewSQLStore(db),
		quiz.EmailPolicy(cfg.AuthorEmail),
		cfg.SystemTitle,
	)

	app := app.App{
		Quiz:         service,
		BearerServer: httpx.NewBearerServer(db, cfg),
		Config:       cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
