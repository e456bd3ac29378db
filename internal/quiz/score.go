package quiz

import "math"

// CorrectCount compares answers[i] only with questions[i]. Missing or unset
// answers never count.
func CorrectCount(questions []Question, answers []Answer) int {
	n := min(len(questions), len(answers))
	correct := 0
	for i := 0; i < n; i++ {
		if answers[i].Is(questions[i].CorrectAnswer) {
			correct++
		}
	}
	return correct
}

// Score is the rounded percentage of correct answers over total.
func Score(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

type MissedQuestion struct {
	Number        int
	Question      string
	UserAnswer    string
	CorrectAnswer string
	Explanation   string
}

// Missed lists every question whose answer is unset, absent or wrong, in order.
func Missed(questions []Question, answers []Answer) []MissedQuestion {
	var missed []MissedQuestion
	for i, q := range questions {
		var a Answer
		if i < len(answers) {
			a = answers[i]
		}
		if a.Is(q.CorrectAnswer) {
			continue
		}
		userAnswer := ""
		if a.Set {
			userAnswer = q.Option(a.Index)
		}
		missed = append(missed, MissedQuestion{
			Number:        i + 1,
			Question:      q.Text,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.Option(q.CorrectAnswer),
			Explanation:   q.Explanation,
		})
	}
	return missed
}
