package quiz

import "github.com/socratmhamad/quiz-socfix/model"

// Score grades a set of answers against a quiz's questions. Answer i is
// correct when it equals the question's correct option index. Total is
// always the question count. When the answer and question counts differ
// only the overlapping prefix is compared; the taking client recomputes
// its displayed score with this same rule, so the two always agree.
func Score(questions []model.Question, answers []int) (score, total int) {
	total = len(questions)
	for i, answer := range answers {
		if i >= len(questions) {
			break
		}
		if answer == questions[i].CorrectOption {
			score++
		}
	}
	return score, total
}
