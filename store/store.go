package store

import (
	"context"
	"errors"

	"github.com/socratmhamad/quiz-socfix/model"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the persistence contract the core needs. It performs no
// referential-integrity checks: submissions may reference quizzes that were
// deleted later, and callers must cope with that.
type Store interface {
	InsertQuiz(ctx context.Context, quiz model.Quiz) (string, error)
	GetQuiz(ctx context.Context, id string) (model.Quiz, error)
	// ListQuizzes returns all quizzes in insertion order.
	ListQuizzes(ctx context.Context) ([]model.Quiz, error)
	// PatchQuiz replaces title, description and questions, leaving author
	// fields untouched. Submissions are not revisited.
	PatchQuiz(ctx context.Context, id, title, description string, questions []model.Question) error
	// DeleteQuiz removes the quiz record only; submissions referencing it
	// stay in the ledger.
	DeleteQuiz(ctx context.Context, id string) error

	InsertSubmission(ctx context.Context, sub model.Submission) (string, error)
	ListSubmissions(ctx context.Context) ([]model.Submission, error)
	// RecentSubmissions returns at most limit submissions, newest first.
	RecentSubmissions(ctx context.Context, limit int) ([]model.Submission, error)

	GetSetting(ctx context.Context, key string) (string, error)
	// PutSetting upserts: at most one record exists per key.
	PutSetting(ctx context.Context, key, value string) error
}
