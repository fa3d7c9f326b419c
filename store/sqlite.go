package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"github.com/socratmhamad/quiz-socfix/model"
)

// SQLStore is the sqlite-backed Store. Question and answer sequences ride
// as JSON columns; everything else is plain columns so the submission
// indexes stay usable.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) InsertQuiz(ctx context.Context, quiz model.Quiz) (string, error) {
	questionsJson, err := json.Marshal(quiz.Questions)
	if err != nil {
		return "", errors.Wrap(err, "insert_quiz.marshal_questions")
	}

	id := uuid.Must(uuid.NewV4()).String()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO quiz (id, title, description, questions, author_id, is_teacher)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id,
		quiz.Title,
		quiz.Description,
		string(questionsJson),
		quiz.AuthorID,
		quiz.IsTeacher,
	)
	if err != nil {
		return "", errors.Wrap(err, "insert_quiz")
	}
	return id, nil
}

func (s *SQLStore) GetQuiz(ctx context.Context, id string) (model.Quiz, error) {
	quiz := model.Quiz{}
	var questionsJson string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, questions, author_id, is_teacher
		FROM quiz
		WHERE id = ?`,
		id,
	).Scan(&quiz.ID, &quiz.Title, &quiz.Description, &questionsJson, &quiz.AuthorID, &quiz.IsTeacher)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Quiz{}, ErrNotFound
	}
	if err != nil {
		return model.Quiz{}, errors.Wrap(err, "get_quiz")
	}

	err = json.Unmarshal([]byte(questionsJson), &quiz.Questions)
	if err != nil {
		return model.Quiz{}, errors.Wrap(err, "get_quiz.parse_questions")
	}
	return quiz, nil
}

func (s *SQLStore) ListQuizzes(ctx context.Context) ([]model.Quiz, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, questions, author_id, is_teacher
		FROM quiz
		ORDER BY rowid`)
	if err != nil {
		return nil, errors.Wrap(err, "get_quizzes")
	}
	defer rows.Close()

	quizzes := []model.Quiz{}
	for rows.Next() {
		quiz := model.Quiz{}
		var questionsJson string
		err = rows.Scan(&quiz.ID, &quiz.Title, &quiz.Description, &questionsJson, &quiz.AuthorID, &quiz.IsTeacher)
		if err != nil {
			return nil, errors.Wrap(err, "get_quizzes.scan")
		}
		err = json.Unmarshal([]byte(questionsJson), &quiz.Questions)
		if err != nil {
			return nil, errors.Wrap(err, "get_quizzes.parse_questions")
		}
		quizzes = append(quizzes, quiz)
	}
	return quizzes, rows.Err()
}

func (s *SQLStore) PatchQuiz(ctx context.Context, id, title, description string, questions []model.Question) error {
	questionsJson, err := json.Marshal(questions)
	if err != nil {
		return errors.Wrap(err, "update_quiz.marshal_questions")
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE quiz
		SET
			title = ?,
			description = ?,
			questions = ?
		WHERE id = ?`,
		title,
		description,
		string(questionsJson),
		id,
	)
	if err != nil {
		return errors.Wrap(err, "update_quiz")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "update_quiz.verify")
	}
	if n < 1 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) DeleteQuiz(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quiz WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "delete_quiz")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete_quiz.verify")
	}
	if n < 1 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) InsertSubmission(ctx context.Context, sub model.Submission) (string, error) {
	answersJson, err := json.Marshal(sub.Answers)
	if err != nil {
		return "", errors.Wrap(err, "insert_submission.marshal_answers")
	}

	id := uuid.Must(uuid.NewV4()).String()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO submission (id, quiz_id, student_id, student_email, answers, score, total, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		sub.QuizID,
		sub.StudentID,
		sub.StudentEmail,
		string(answersJson),
		sub.Score,
		sub.Total,
		sub.SubmittedAt,
	)
	if err != nil {
		return "", errors.Wrap(err, "insert_submission")
	}
	return id, nil
}

func (s *SQLStore) ListSubmissions(ctx context.Context) ([]model.Submission, error) {
	return s.querySubmissions(ctx, `
		SELECT id, quiz_id, student_id, student_email, answers, score, total, submitted_at
		FROM submission
		ORDER BY rowid`)
}

func (s *SQLStore) RecentSubmissions(ctx context.Context, limit int) ([]model.Submission, error) {
	return s.querySubmissions(ctx, `
		SELECT id, quiz_id, student_id, student_email, answers, score, total, submitted_at
		FROM submission
		ORDER BY submitted_at DESC, rowid DESC
		LIMIT ?`,
		limit,
	)
}

func (s *SQLStore) querySubmissions(ctx context.Context, query string, args ...any) ([]model.Submission, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "get_submissions")
	}
	defer rows.Close()

	subs := []model.Submission{}
	for rows.Next() {
		sub := model.Submission{}
		var answersJson string
		err = rows.Scan(
			&sub.ID, &sub.QuizID, &sub.StudentID, &sub.StudentEmail,
			&answersJson, &sub.Score, &sub.Total, &sub.SubmittedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "get_submissions.scan")
		}
		err = json.Unmarshal([]byte(answersJson), &sub.Answers)
		if err != nil {
			return nil, errors.Wrap(err, "get_submissions.parse_answers")
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (s *SQLStore) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM setting WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "get_setting")
	}
	return value, nil
}

func (s *SQLStore) PutSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO setting (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key,
		value,
	)
	return errors.Wrap(err, "put_setting")
}
