package analysis

import (
	"fmt"
	"strings"

	"github.com/saulo-duarte/ai-mastery-drill/internal/quiz"
)

func BuildPrompt(req AnalyzeRequest, missed []quiz.MissedQuestion) string {
	var b strings.Builder

	b.WriteString("Analyze this student's performance and provide actionable insights.\n\n")
	fmt.Fprintf(&b, "Subject: %s\n", req.Subject)
	fmt.Fprintf(&b, "Subtopic: %s\n", req.Subtopic)
	fmt.Fprintf(&b, "Score: %d%%\n", req.Score)
	fmt.Fprintf(&b, "Total Questions: %d\n", len(req.Questions))
	fmt.Fprintf(&b, "Wrong Answers: %d\n\n", len(missed))

	if len(missed) == 0 {
		b.WriteString("The student answered every question correctly.\n")
	} else {
		b.WriteString("Questions the student got wrong:\n")
		for i, m := range missed {
			userAnswer := m.UserAnswer
			if userAnswer == "" {
				userAnswer = "no answer"
			}
			fmt.Fprintf(&b, "\n%d. %s\n", i+1, m.Question)
			fmt.Fprintf(&b, "   - Student answered: %s\n", userAnswer)
			fmt.Fprintf(&b, "   - Correct answer: %s\n", m.CorrectAnswer)
			if m.Explanation != "" {
				fmt.Fprintf(&b, "   - Explanation: %s\n", m.Explanation)
			}
		}
	}

	fmt.Fprintf(&b, `
Based on this performance, provide:
1. Specific areas/concepts within %q where the student needs improvement, each with a priority
2. Actionable study recommendations
3. Overall performance summary

Return ONLY a valid JSON object with this structure (no markdown, no extra text):
{
  "laggingAreas": [
    {
      "area": "Specific concept name",
      "description": "Brief explanation of the gap",
      "priority": "high" | "medium" | "low"
    }
  ],
  "recommendations": [
    "Specific actionable recommendation"
  ],
  "summary": "Overall performance summary in 2-3 sentences"
}
`, req.Subtopic)

	return b.String()
}
