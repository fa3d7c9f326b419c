package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/socratmhamad/quiz-socfix/model"
	"github.com/socratmhamad/quiz-socfix/store"
)

const (
	// SystemTitleKey is the settings key for the public display title.
	SystemTitleKey = "system_title"
	// UnknownStudent is stored on a submission when the principal has no
	// email on file.
	UnknownStudent = "Unknown student"
	// DeletedQuizTitle stands in for the title of a quiz that was deleted
	// after submissions referenced it.
	DeletedQuizTitle = "Deleted quiz"

	recentSubmissionLimit = 10
)

// Service is the assessment core: authorization gating, quiz CRUD, the
// submission ledger and settings access. It holds no state of its own;
// every call is one request/response transaction against the store.
type Service struct {
	store        store.Store
	policy       AuthorPolicy
	defaultTitle string
	now          func() time.Time
}

func NewService(st store.Store, policy AuthorPolicy, defaultTitle string) *Service {
	return NewServiceWithClock(st, policy, defaultTitle, time.Now)
}

// NewServiceWithClock allows deterministic timestamps in tests.
func NewServiceWithClock(st store.Store, policy AuthorPolicy, defaultTitle string, now func() time.Time) *Service {
	return &Service{store: st, policy: policy, defaultTitle: defaultTitle, now: now}
}

// ListQuizzes returns all quizzes annotated with the viewer's authoring
// flags. Anonymous callers get an empty list, not an error.
func (s *Service) ListQuizzes(ctx context.Context, p model.Principal) ([]model.QuizListing, error) {
	if p.Anonymous() {
		return []model.QuizListing{}, nil
	}

	quizzes, err := s.store.ListQuizzes(ctx)
	if err != nil {
		return nil, err
	}

	isAuthor := s.policy.IsAuthor(p)
	listings := make([]model.QuizListing, len(quizzes))
	for i, quiz := range quizzes {
		listings[i] = model.QuizListing{
			Quiz:      quiz,
			CanCreate: isAuthor,
			IsTeacher: isAuthor,
		}
	}
	return listings, nil
}

func (s *Service) GetQuiz(ctx context.Context, id string) (model.Quiz, error) {
	quiz, err := s.store.GetQuiz(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return model.Quiz{}, ErrNotFound
	}
	return quiz, err
}

func (s *Service) CreateQuiz(ctx context.Context, p model.Principal, title, description string, questions []model.Question) (string, error) {
	if err := s.requireAuthor(p); err != nil {
		return "", err
	}
	if err := validateQuiz(title, questions); err != nil {
		return "", err
	}

	return s.store.InsertQuiz(ctx, model.Quiz{
		Title:       title,
		Description: description,
		Questions:   questions,
		AuthorID:    p.ID,
		IsTeacher:   true,
	})
}

// UpdateQuiz replaces title, description and questions wholesale. Already
// graded submissions keep the question set they were graded against.
func (s *Service) UpdateQuiz(ctx context.Context, p model.Principal, id, title, description string, questions []model.Question) error {
	if err := s.requireAuthor(p); err != nil {
		return err
	}
	if err := validateQuiz(title, questions); err != nil {
		return err
	}

	err := s.store.PatchQuiz(ctx, id, title, description, questions)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// DeleteQuiz removes the quiz only. Submissions referencing it are
// orphaned, never cascade-deleted.
func (s *Service) DeleteQuiz(ctx context.Context, p model.Principal, id string) error {
	if err := s.requireAuthor(p); err != nil {
		return err
	}

	err := s.store.DeleteQuiz(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Submit grades answers against the quiz as it exists right now and
// appends one immutable submission record. Any authenticated principal
// may submit; only the computed result is returned.
func (s *Service) Submit(ctx context.Context, p model.Principal, quizID string, answers []int) (model.Result, error) {
	if p.Anonymous() {
		return model.Result{}, ErrUnauthenticated
	}

	quiz, err := s.store.GetQuiz(ctx, quizID)
	if errors.Is(err, store.ErrNotFound) {
		return model.Result{}, ErrNotFound
	}
	if err != nil {
		return model.Result{}, err
	}

	score, total := Score(quiz.Questions, answers)

	email := p.Email
	if email == "" {
		email = UnknownStudent
	}
	_, err = s.store.InsertSubmission(ctx, model.Submission{
		QuizID:       quizID,
		StudentID:    p.ID,
		StudentEmail: email,
		Answers:      answers,
		Score:        score,
		Total:        total,
		SubmittedAt:  s.now(),
	})
	if err != nil {
		return model.Result{}, errors.Wrap(err, "record submission")
	}
	return model.Result{Score: score, Total: total}, nil
}

// RecentSubmissions returns the ten newest graded attempts, each resolved
// to its quiz title at read time. Author only.
func (s *Service) RecentSubmissions(ctx context.Context, p model.Principal) ([]model.SubmissionView, error) {
	if err := s.requireAuthor(p); err != nil {
		return nil, err
	}

	subs, err := s.store.RecentSubmissions(ctx, recentSubmissionLimit)
	if err != nil {
		return nil, err
	}

	views := make([]model.SubmissionView, len(subs))
	for i, sub := range subs {
		title := DeletedQuizTitle
		quiz, err := s.store.GetQuiz(ctx, sub.QuizID)
		if err == nil {
			title = quiz.Title
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		views[i] = model.SubmissionView{Submission: sub, QuizTitle: title}
	}
	return views, nil
}

// SystemTitle is readable by anyone and falls back to the configured
// default when the setting is missing or empty.
func (s *Service) SystemTitle(ctx context.Context) (string, error) {
	value, err := s.store.GetSetting(ctx, SystemTitleKey)
	if errors.Is(err, store.ErrNotFound) {
		return s.defaultTitle, nil
	}
	if err != nil {
		return "", err
	}
	if value == "" {
		return s.defaultTitle, nil
	}
	return value, nil
}

func (s *Service) SetSystemTitle(ctx context.Context, p model.Principal, title string) error {
	if err := s.requireAuthor(p); err != nil {
		return err
	}
	return s.store.PutSetting(ctx, SystemTitleKey, title)
}

func (s *Service) requireAuthor(p model.Principal) error {
	if p.Anonymous() {
		return ErrUnauthenticated
	}
	if !s.policy.IsAuthor(p) {
		return ErrForbidden
	}
	return nil
}

func validateQuiz(title string, questions []model.Question) error {
	var errs *multierror.Error
	if strings.TrimSpace(title) == "" {
		errs = multierror.Append(errs, errors.New("title must not be empty"))
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			errs = multierror.Append(errs, errors.Errorf("question %d: text must not be empty", i))
		}
		if len(q.Options) == 0 {
			errs = multierror.Append(errs, errors.Errorf("question %d: needs at least one option", i))
		} else if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
			errs = multierror.Append(errs, errors.Errorf("question %d: correct option %d out of range", i, q.CorrectOption))
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}
	return nil
}
