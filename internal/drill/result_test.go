package drill

import (
	"strings"
	"testing"

	"github.com/saulo-duarte/ai-mastery-drill/internal/quiz"
)

func sampleResult() Result {
	q := quiz.Question{Text: "What is the slope of a velocity-time graph?", Options: []string{"acceleration", "displacement", "speed", "jerk"}, CorrectAnswer: 0, Explanation: "dv/dt"}
	return Result{
		Subject:   "Physics",
		Subtopic:  "Kinematics",
		Score:     50,
		Correct:   1,
		Incorrect: 1,
		Total:     2,
		Questions: []quiz.Question{q, q},
		Answers:   []quiz.Answer{quiz.Chosen(0), quiz.Chosen(1)},
	}
}

func TestRender(t *testing.T) {
	t.Run("ScoreOnly", func(t *testing.T) {
		var b strings.Builder
		if err := Render(&b, sampleResult()); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		out := b.String()
		for _, want := range []string{"Score: 50%", "Correct: 1  Incorrect: 1  Total: 2", "your answer: displacement", "correct: acceleration"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "Summary") || strings.Contains(out, "Recommendations") {
			t.Errorf("score-only output should not contain analysis sections:\n%s", out)
		}
	})

	t.Run("WithAnalysis", func(t *testing.T) {
		r := sampleResult()
		r.Analysis = &quiz.AnalysisResult{
			Summary: "Good start.",
			LaggingAreas: []quiz.LaggingArea{
				{Area: "Graphs", Description: "Reading slopes", Priority: quiz.PriorityLow},
				{Area: "Units", Description: "Mixing m/s and km/h", Priority: quiz.PriorityHigh},
			},
			Recommendations: []string{"Sketch v-t graphs"},
		}

		var b strings.Builder
		Render(&b, r)
		out := b.String()

		graphs := strings.Index(out, "[low] Graphs")
		units := strings.Index(out, "[high] Units")
		if graphs < 0 || units < 0 || graphs > units {
			t.Errorf("lagging areas should keep received order:\n%s", out)
		}
		if !strings.Contains(out, "1. Sketch v-t graphs") {
			t.Errorf("missing recommendation:\n%s", out)
		}
	})
}
