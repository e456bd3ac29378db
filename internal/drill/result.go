package drill

import (
	"fmt"
	"io"
	"strings"

	"github.com/saulo-duarte/ai-mastery-drill/internal/quiz"
)

// Result is the results view of a finished drill. Analysis is nil when the
// review could not be produced.
type Result struct {
	Subject   string               `json:"subject"`
	Subtopic  string               `json:"subtopic"`
	Score     int                  `json:"score"`
	Correct   int                  `json:"correct"`
	Incorrect int                  `json:"incorrect"`
	Total     int                  `json:"total"`
	Questions []quiz.Question      `json:"questions"`
	Answers   []quiz.Answer        `json:"answers"`
	Analysis  *quiz.AnalysisResult `json:"analysis,omitempty"`
}

func (r Result) Missed() []quiz.MissedQuestion {
	return quiz.Missed(r.Questions, r.Answers)
}

// Render writes r as plain text. Lagging areas keep the order they were
// received in.
func Render(w io.Writer, r Result) error {
	b := &strings.Builder{}

	fmt.Fprintf(b, "%s: %s\n", r.Subject, r.Subtopic)
	fmt.Fprintf(b, "Score: %d%%\n", r.Score)
	fmt.Fprintf(b, "Correct: %d  Incorrect: %d  Total: %d\n", r.Correct, r.Incorrect, r.Total)

	if a := r.Analysis; a != nil {
		if a.Summary != "" {
			fmt.Fprintf(b, "\nSummary\n  %s\n", a.Summary)
		}
		if len(a.LaggingAreas) > 0 {
			b.WriteString("\nAreas to improve\n")
			for _, area := range a.LaggingAreas {
				fmt.Fprintf(b, "  [%s] %s: %s\n", area.Priority, area.Area, area.Description)
			}
		}
		if len(a.Recommendations) > 0 {
			b.WriteString("\nRecommendations\n")
			for i, rec := range a.Recommendations {
				fmt.Fprintf(b, "  %d. %s\n", i+1, rec)
			}
		}
	}

	if missed := r.Missed(); len(missed) > 0 {
		b.WriteString("\nReview\n")
		for _, m := range missed {
			answer := m.UserAnswer
			if answer == "" {
				answer = "(no answer)"
			}
			fmt.Fprintf(b, "  %d. %s\n     your answer: %s\n     correct: %s\n", m.Number, m.Question, answer, m.CorrectAnswer)
			if m.Explanation != "" {
				fmt.Fprintf(b, "     %s\n", m.Explanation)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
