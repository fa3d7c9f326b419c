package quiz

import (
	"context"

	"github.com/socratmhamad/quiz-socfix/model"
)

// Stats computes system-wide and per-quiz aggregates over the whole
// submission ledger. Author only. Reads are best-effort snapshots: the two
// listings are not taken under one transaction.
func (s *Service) Stats(ctx context.Context, p model.Principal) (model.Stats, error) {
	if err := s.requireAuthor(p); err != nil {
		return model.Stats{}, err
	}

	quizzes, err := s.store.ListQuizzes(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	subs, err := s.store.ListSubmissions(ctx)
	if err != nil {
		return model.Stats{}, err
	}

	stats := model.Stats{
		TotalQuizzes:     len(quizzes),
		TotalSubmissions: len(subs),
		AverageScore:     mean(percentages(subs)),
		QuizStats:        make([]model.QuizStats, len(quizzes)),
	}

	byQuiz := map[string][]model.Submission{}
	for _, sub := range subs {
		byQuiz[sub.QuizID] = append(byQuiz[sub.QuizID], sub)
	}

	for i, quiz := range quizzes {
		quizSubs := byQuiz[quiz.ID]
		scores := percentages(quizSubs)
		stats.QuizStats[i] = model.QuizStats{
			ID:              quiz.ID,
			Title:           quiz.Title,
			SubmissionCount: len(quizSubs),
			AverageScore:    mean(scores),
			HighestScore:    max(scores),
			LowestScore:     min(scores),
		}
	}
	return stats, nil
}

// percentages derives a (score/total)*100 value per submission, skipping
// records whose stored total cannot score anything. Skipped records still
// count toward raw submission counts.
func percentages(subs []model.Submission) []float64 {
	scores := make([]float64, 0, len(subs))
	for _, sub := range subs {
		if sub.Total <= 0 {
			continue
		}
		scores = append(scores, float64(sub.Score)/float64(sub.Total)*100)
	}
	return scores
}

func mean(scores []float64) *float64 {
	if len(scores) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	avg := sum / float64(len(scores))
	return &avg
}

func max(scores []float64) *float64 {
	if len(scores) == 0 {
		return nil
	}
	best := scores[0]
	for _, v := range scores[1:] {
		if v > best {
			best = v
		}
	}
	return &best
}

func min(scores []float64) *float64 {
	if len(scores) == 0 {
		return nil
	}
	worst := scores[0]
	for _, v := range scores[1:] {
		if v < worst {
			worst = v
		}
	}
	return &worst
}
