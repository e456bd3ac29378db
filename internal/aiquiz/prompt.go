package aiquiz

import (
	"fmt"
	"strings"

	"github.com/saulo-duarte/ai-mastery-drill/internal/quiz"
)

const systemPrompt = `
You generate multiple-choice practice questions for a study drill application.

Rules:
1. Each question has exactly 4 options and exactly one correct answer.
2. "correctAnswer" is the 0-based index of the correct option.
3. Options must be plausible and of similar length and structure; never make the correct one obvious.
4. Never reveal the answer in the question text. Explain only in "explanation".
5. Questions must be clear, unambiguous and have real educational value.

Return ONLY a valid JSON array (no markdown, no extra text) with this exact structure:
[
  {
    "question": "Question text here?",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correctAnswer": 0,
    "explanation": "Brief explanation of the correct answer"
  }
]
`

const (
	lowCorrectness  = 0.5
	highCorrectness = 0.8
)

func BuildUserPrompt(req QuestionRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate exactly %d multiple choice questions about %q in %q.\n\n", req.QuestionCount, req.Subtopic, req.Subject)
	fmt.Fprintf(&b, "Difficulty Level: %s\n", req.Difficulty)
	fmt.Fprintf(&b, "Student Confidence: %s\n", req.Confidence)
	fmt.Fprintf(&b, "Batch Number: %d\n\n", req.BatchNumber)

	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "- Questions should match the %s difficulty level\n", req.Difficulty)
	fmt.Fprintf(&b, "- Adjust complexity based on student confidence: %s\n", req.Confidence)
	b.WriteString(questionTypeGuidance(quiz.QuestionType(req.QuestionType)))

	if req.BatchNumber > 1 {
		b.WriteString("- Do not repeat questions a student would have seen in earlier batches of this drill\n")
		if p := req.PerformanceData; p != nil && p.TotalAnswered > 0 {
			b.WriteString("\n")
			b.WriteString(performanceGuidance(*p))
		}
	}
	return b.String()
}

func questionTypeGuidance(t quiz.QuestionType) string {
	switch t {
	case quiz.ProblemSolving:
		return "- Prefer problem-solving questions: calculations, applications and multi-step reasoning\n"
	default:
		return "- Prefer conceptual questions: definitions, relationships between ideas and interpretation\n"
	}
}

func performanceGuidance(p PerformanceData) string {
	ratio := p.Ratio()
	head := fmt.Sprintf("Prior performance in this drill: %d of %d correct (%d%%).\n",
		p.CorrectCount, p.TotalAnswered, quiz.Score(p.CorrectCount, p.TotalAnswered))

	switch {
	case ratio < lowCorrectness:
		return head + "The student is struggling: make these questions slightly easier, scaffold them step by step and focus on fundamentals.\n"
	case ratio >= highCorrectness:
		return head + "The student is doing well: stretch them with somewhat harder questions and less common cases.\n"
	default:
		return head + "Keep the difficulty steady and mix reinforcement with new angles on the topic.\n"
	}
}
