package app

import (
	"github.com/go-chi/oauth"
	"github.com/socratmhamad/quiz-socfix/config"
	"github.com/socratmhamad/quiz-socfix/quiz"
)

type App struct {
	Quiz *quiz.Service
	*oauth.BearerServer
	config.Config
}
