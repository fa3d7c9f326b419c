package model

import "time"

// Principal is the identity resolved by the auth layer for one request.
// The zero value is the anonymous caller.
type Principal struct {
	ID    string
	Email string
}

func (p Principal) Anonymous() bool {
	return p.ID == ""
}

type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correctOption"`
}

type Quiz struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	AuthorID    string     `json:"authorId,omitempty"`
	IsTeacher   bool       `json:"isTeacher,omitempty"`
}

// QuizListing is a Quiz annotated with the viewer's authoring capabilities.
// The outer flags shadow the record's own isTeacher marker on purpose.
type QuizListing struct {
	Quiz
	CanCreate bool `json:"canCreate"`
	IsTeacher bool `json:"isTeacher"`
}

// Submission is one graded attempt. Records are append-only: once written
// they are never patched or deleted, even if the quiz they reference is.
type Submission struct {
	ID           string    `json:"id"`
	QuizID       string    `json:"quizId"`
	StudentID    string    `json:"studentId"`
	StudentEmail string    `json:"studentEmail"`
	Answers      []int     `json:"answers"`
	Score        int       `json:"score"`
	Total        int       `json:"total"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

// SubmissionView carries the quiz title resolved at read time. QuizTitle
// holds a placeholder when the quiz has since been deleted.
type SubmissionView struct {
	Submission
	QuizTitle string `json:"quizTitle"`
}

type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Result is what a student gets back from a submission.
type Result struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// QuizStats aggregates submissions for one quiz. The score fields are
// percentages and are nil when no scoreable submission exists, which can
// differ from SubmissionCount being zero.
type QuizStats struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	SubmissionCount int      `json:"submissionCount"`
	AverageScore    *float64 `json:"averageScore,omitempty"`
	HighestScore    *float64 `json:"highestScore,omitempty"`
	LowestScore     *float64 `json:"lowestScore,omitempty"`
}

type Stats struct {
	TotalQuizzes     int         `json:"totalQuizzes"`
	TotalSubmissions int         `json:"totalSubmissions"`
	AverageScore     *float64    `json:"averageScore,omitempty"`
	QuizStats        []QuizStats `json:"quizStats"`
}
