package quiz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/socratmhamad/quiz-socfix/model"
	"github.com/socratmhamad/quiz-socfix/quiz"
)

func TestStatsGating(t *testing.T) {
	_, service := newTestService()
	ctx := context.Background()

	if _, err := service.Stats(ctx, anonymous); !errors.Is(err, quiz.ErrUnauthenticated) {
		t.Fatalf("anonymous stats: expected ErrUnauthenticated, got %v", err)
	}
	if _, err := service.Stats(ctx, student); !errors.Is(err, quiz.ErrForbidden) {
		t.Fatalf("student stats: expected ErrForbidden, got %v", err)
	}
	if _, err := service.RecentSubmissions(ctx, student); !errors.Is(err, quiz.ErrForbidden) {
		t.Fatalf("student submissions: expected ErrForbidden, got %v", err)
	}
}

func TestStatsEmptySystem(t *testing.T) {
	_, service := newTestService()

	stats, err := service.Stats(context.Background(), author)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalQuizzes != 0 || stats.TotalSubmissions != 0 {
		t.Fatalf("expected zero totals, got %+v", stats)
	}
	if stats.AverageScore != nil {
		t.Fatalf("expected absent average on empty system, got %v", *stats.AverageScore)
	}
	if len(stats.QuizStats) != 0 {
		t.Fatalf("expected empty quiz stats, got %d entries", len(stats.QuizStats))
	}
}

func TestStatsAggregation(t *testing.T) {
	_, service := newTestService()
	ctx := context.Background()

	questions := []model.Question{
		{Question: "q1", Options: []string{"a", "b"}, CorrectOption: 0},
		{Question: "q2", Options: []string{"a", "b"}, CorrectOption: 0},
		{Question: "q3", Options: []string{"a", "b"}, CorrectOption: 0},
		{Question: "q4", Options: []string{"a", "b"}, CorrectOption: 0},
	}
	id, err := service.CreateQuiz(ctx, author, "Algebra", "", questions)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// 3/4 = 75%, then 2/4 = 50%.
	if _, err := service.Submit(ctx, student, id, []int{0, 0, 0, 1}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := service.Submit(ctx, model.Principal{ID: "s2", Email: "s2@example.com"}, id, []int{0, 0, 1, 1}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	stats, err := service.Stats(ctx, author)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalQuizzes != 1 || stats.TotalSubmissions != 2 {
		t.Fatalf("totals wrong: %+v", stats)
	}
	if stats.AverageScore == nil || *stats.AverageScore != 62.5 {
		t.Fatalf("expected overall average 62.5, got %v", stats.AverageScore)
	}

	if len(stats.QuizStats) != 1 {
		t.Fatalf("expected 1 quiz entry, got %d", len(stats.QuizStats))
	}
	qs := stats.QuizStats[0]
	if qs.ID != id || qs.Title != "Algebra" || qs.SubmissionCount != 2 {
		t.Fatalf("quiz entry wrong: %+v", qs)
	}
	if qs.AverageScore == nil || *qs.AverageScore != 62.5 {
		t.Fatalf("expected quiz average 62.5, got %v", qs.AverageScore)
	}
	if qs.HighestScore == nil || *qs.HighestScore != 75 {
		t.Fatalf("expected highest 75, got %v", qs.HighestScore)
	}
	if qs.LowestScore == nil || *qs.LowestScore != 50 {
		t.Fatalf("expected lowest 50, got %v", qs.LowestScore)
	}
}

func TestStatsQuizWithoutScoreableSubmissions(t *testing.T) {
	_, service := newTestService()
	ctx := context.Background()

	// A quiz without questions grades every submission as 0/0: the raw
	// count must still show up while the score aggregates stay absent.
	id, err := service.CreateQuiz(ctx, author, "Draft", "", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := service.Submit(ctx, student, id, nil); err != nil {
		t.Fatalf("submit: %v", err)
	}

	stats, err := service.Stats(ctx, author)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	qs := stats.QuizStats[0]
	if qs.SubmissionCount != 1 {
		t.Fatalf("expected raw count 1, got %d", qs.SubmissionCount)
	}
	if qs.AverageScore != nil || qs.HighestScore != nil || qs.LowestScore != nil {
		t.Fatalf("expected absent score aggregates, got %+v", qs)
	}
	if stats.AverageScore != nil {
		t.Fatalf("expected absent overall average, got %v", *stats.AverageScore)
	}
}

func TestStatsTolerateOrphanedSubmissions(t *testing.T) {
	_, service := newTestService()
	ctx := context.Background()

	questions := []model.Question{{Question: "q1", Options: []string{"a", "b"}, CorrectOption: 0}}
	id, err := service.CreateQuiz(ctx, author, "Ephemeral", "", questions)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := service.Submit(ctx, student, id, []int{0}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := service.DeleteQuiz(ctx, author, id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	stats, err := service.Stats(ctx, author)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	// The orphaned submission still counts globally even though no quiz
	// entry claims it.
	if stats.TotalQuizzes != 0 || stats.TotalSubmissions != 1 {
		t.Fatalf("totals wrong after delete: %+v", stats)
	}
	if stats.AverageScore == nil || *stats.AverageScore != 100 {
		t.Fatalf("expected overall average 100, got %v", stats.AverageScore)
	}
	if len(stats.QuizStats) != 0 {
		t.Fatalf("expected no quiz entries, got %d", len(stats.QuizStats))
	}
}

func TestRecentSubmissionsLimitAndOrder(t *testing.T) {
	_, service := newTestService()
	ctx := context.Background()

	questions := []model.Question{{Question: "q1", Options: []string{"a", "b"}, CorrectOption: 0}}
	id, err := service.CreateQuiz(ctx, author, "Algebra", "", questions)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 12; i++ {
		if _, err := service.Submit(ctx, student, id, []int{i % 2}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	views, err := service.RecentSubmissions(ctx, author)
	if err != nil {
		t.Fatalf("recent submissions: %v", err)
	}
	if len(views) != 10 {
		t.Fatalf("expected 10 submissions, got %d", len(views))
	}
	for i := 1; i < len(views); i++ {
		if views[i].SubmittedAt.After(views[i-1].SubmittedAt) {
			t.Fatalf("submissions not ordered newest first at index %d", i)
		}
	}
	for _, v := range views {
		if v.QuizTitle != "Algebra" {
			t.Fatalf("expected resolved quiz title, got %q", v.QuizTitle)
		}
	}
}

func TestRecentSubmissionsDeletedQuizPlaceholder(t *testing.T) {
	_, service := newTestService()
	ctx := context.Background()

	questions := []model.Question{{Question: "q1", Options: []string{"a", "b"}, CorrectOption: 0}}
	id, err := service.CreateQuiz(ctx, author, "Ephemeral", "", questions)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := service.Submit(ctx, student, id, []int{0}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := service.DeleteQuiz(ctx, author, id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	views, err := service.RecentSubmissions(ctx, author)
	if err != nil {
		t.Fatalf("recent submissions: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected the orphaned submission, got %d", len(views))
	}
	if views[0].QuizTitle != quiz.DeletedQuizTitle {
		t.Fatalf("expected placeholder title, got %q", views[0].QuizTitle)
	}
}
