package quiz_test

import (
	"testing"

	"github.com/socratmhamad/quiz-socfix/model"
	"github.com/socratmhamad/quiz-socfix/quiz"
)

func TestScoreCountsMatchingAnswers(t *testing.T) {
	questions := []model.Question{
		{Question: "q1", Options: []string{"a", "b", "c", "d"}, CorrectOption: 0},
		{Question: "q2", Options: []string{"a", "b", "c", "d"}, CorrectOption: 2},
	}

	score, total := quiz.Score(questions, []int{0, 1})
	if score != 1 || total != 2 {
		t.Fatalf("expected 1/2, got %d/%d", score, total)
	}

	score, total = quiz.Score(questions, []int{0, 2})
	if score != 2 || total != 2 {
		t.Fatalf("expected 2/2, got %d/%d", score, total)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	questions := []model.Question{
		{Question: "q1", Options: []string{"a", "b"}, CorrectOption: 1},
		{Question: "q2", Options: []string{"a", "b", "c"}, CorrectOption: 0},
		{Question: "q3", Options: []string{"a", "b"}, CorrectOption: 0},
	}
	answers := []int{1, 2, 0}

	s1, t1 := quiz.Score(questions, answers)
	s2, t2 := quiz.Score(questions, answers)
	if s1 != s2 || t1 != t2 {
		t.Fatalf("same input scored differently: %d/%d vs %d/%d", s1, t1, s2, t2)
	}
}

func TestScoreComparesOverlappingPrefixOnly(t *testing.T) {
	questions := []model.Question{
		{Question: "q1", Options: []string{"a", "b"}, CorrectOption: 0},
		{Question: "q2", Options: []string{"a", "b"}, CorrectOption: 1},
		{Question: "q3", Options: []string{"a", "b"}, CorrectOption: 1},
	}

	// Fewer answers than questions: unanswered questions score nothing,
	// total still reflects the full question count.
	score, total := quiz.Score(questions, []int{0})
	if score != 1 || total != 3 {
		t.Fatalf("short answers: expected 1/3, got %d/%d", score, total)
	}

	// More answers than questions: the excess is never evaluated.
	score, total = quiz.Score(questions, []int{0, 1, 1, 0, 1})
	if score != 3 || total != 3 {
		t.Fatalf("long answers: expected 3/3, got %d/%d", score, total)
	}
}

func TestScoreStaysWithinBounds(t *testing.T) {
	questions := []model.Question{
		{Question: "q1", Options: []string{"a", "b"}, CorrectOption: 0},
		{Question: "q2", Options: []string{"a", "b"}, CorrectOption: 0},
	}

	for _, answers := range [][]int{nil, {5, 5}, {0}, {0, 0}, {0, 0, 0, 0}} {
		score, total := quiz.Score(questions, answers)
		if score < 0 || score > total {
			t.Fatalf("answers %v: score %d outside [0, %d]", answers, score, total)
		}
	}
}
