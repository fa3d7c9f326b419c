package store

import (
	"context"
	"sort"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/socratmhamad/quiz-socfix/model"
)

// MemoryStore keeps everything in maps behind a mutex. It backs the core
// tests and small demo deployments that do not want a database file.
type MemoryStore struct {
	mu          sync.RWMutex
	quizzes     map[string]model.Quiz
	quizOrder   []string
	submissions []model.Submission
	settings    map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		quizzes:  map[string]model.Quiz{},
		settings: map[string]string{},
	}
}

func (m *MemoryStore) InsertQuiz(_ context.Context, quiz model.Quiz) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	quiz.ID = uuid.Must(uuid.NewV4()).String()
	quiz.Questions = cloneQuestions(quiz.Questions)
	m.quizzes[quiz.ID] = quiz
	m.quizOrder = append(m.quizOrder, quiz.ID)
	return quiz.ID, nil
}

func (m *MemoryStore) GetQuiz(_ context.Context, id string) (model.Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	quiz, ok := m.quizzes[id]
	if !ok {
		return model.Quiz{}, ErrNotFound
	}
	quiz.Questions = cloneQuestions(quiz.Questions)
	return quiz, nil
}

func (m *MemoryStore) ListQuizzes(_ context.Context) ([]model.Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	quizzes := make([]model.Quiz, 0, len(m.quizOrder))
	for _, id := range m.quizOrder {
		quiz := m.quizzes[id]
		quiz.Questions = cloneQuestions(quiz.Questions)
		quizzes = append(quizzes, quiz)
	}
	return quizzes, nil
}

func (m *MemoryStore) PatchQuiz(_ context.Context, id, title, description string, questions []model.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	quiz, ok := m.quizzes[id]
	if !ok {
		return ErrNotFound
	}
	quiz.Title = title
	quiz.Description = description
	quiz.Questions = cloneQuestions(questions)
	m.quizzes[id] = quiz
	return nil
}

func (m *MemoryStore) DeleteQuiz(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.quizzes[id]; !ok {
		return ErrNotFound
	}
	delete(m.quizzes, id)
	for i, qid := range m.quizOrder {
		if qid == id {
			m.quizOrder = append(m.quizOrder[:i], m.quizOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryStore) InsertSubmission(_ context.Context, sub model.Submission) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub.ID = uuid.Must(uuid.NewV4()).String()
	sub.Answers = append([]int(nil), sub.Answers...)
	m.submissions = append(m.submissions, sub)
	return sub.ID, nil
}

func (m *MemoryStore) ListSubmissions(_ context.Context) ([]model.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	subs := make([]model.Submission, len(m.submissions))
	copy(subs, m.submissions)
	return subs, nil
}

func (m *MemoryStore) RecentSubmissions(_ context.Context, limit int) ([]model.Submission, error) {
	m.mu.RLock()
	// Walk backwards so the stable sort leaves latest-inserted first on
	// timestamp ties, same as the sql store's rowid tiebreak.
	subs := make([]model.Submission, 0, len(m.submissions))
	for i := len(m.submissions) - 1; i >= 0; i-- {
		subs = append(subs, m.submissions[i])
	}
	m.mu.RUnlock()

	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].SubmittedAt.After(subs[j].SubmittedAt)
	})
	if limit >= 0 && len(subs) > limit {
		subs = subs[:limit]
	}
	return subs, nil
}

func (m *MemoryStore) GetSetting(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.settings[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *MemoryStore) PutSetting(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings[key] = value
	return nil
}

func cloneQuestions(questions []model.Question) []model.Question {
	if questions == nil {
		return nil
	}
	out := make([]model.Question, len(questions))
	for i, q := range questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}
