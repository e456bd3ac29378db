package quiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	OptionCount      = 4
	BatchSize        = 5
	MaxQuestionCount = 20
)

var ErrInvalidQuestion = errors.New("invalid question")

type Question struct {
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: empty question text", ErrInvalidQuestion)
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("%w: expected %d options, got %d", ErrInvalidQuestion, OptionCount, len(q.Options))
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("%w: option %d is empty", ErrInvalidQuestion, i)
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("%w: correct answer index %d out of range", ErrInvalidQuestion, q.CorrectAnswer)
	}
	return nil
}

// Option returns the text of option i, or "" when i is out of range.
func (q Question) Option(i int) string {
	if i < 0 || i >= len(q.Options) {
		return ""
	}
	return q.Options[i]
}

// Answer is the option a user picked. The zero value is unanswered and
// travels as JSON null.
type Answer struct {
	Index int
	Set   bool
}

func Chosen(i int) Answer {
	return Answer{Index: i, Set: true}
}

func (a Answer) Is(index int) bool {
	return a.Set && a.Index == index
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if !a.Set {
		return []byte("null"), nil
	}
	return json.Marshal(a.Index)
}

func (a *Answer) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*a = Answer{}
		return nil
	}
	var i int
	if err := json.Unmarshal(b, &i); err != nil {
		return err
	}
	*a = Chosen(i)
	return nil
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type LaggingArea struct {
	Area        string   `json:"area"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}

type AnalysisResult struct {
	Summary         string        `json:"summary"`
	LaggingAreas    []LaggingArea `json:"laggingAreas"`
	Recommendations []string      `json:"recommendations"`
}
