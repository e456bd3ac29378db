package quiz

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidConfig = errors.New("invalid drill config")

type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

var AllDifficulties = []Difficulty{Beginner, Intermediate, Advanced}

func (d Difficulty) IsValid() bool {
	for _, v := range AllDifficulties {
		if d == v {
			return true
		}
	}
	return false
}

type Confidence string

const (
	Vague         Confidence = "Vague"
	GotTheBasics  Confidence = "Got the Basics"
	ReadyToMaster Confidence = "Ready to Master"
)

var AllConfidences = []Confidence{Vague, GotTheBasics, ReadyToMaster}

func (c Confidence) IsValid() bool {
	for _, v := range AllConfidences {
		if c == v {
			return true
		}
	}
	return false
}

type QuestionType string

const (
	Conceptual     QuestionType = "conceptual"
	ProblemSolving QuestionType = "problem-solving"
)

func (t QuestionType) IsValid() bool {
	return t == Conceptual || t == ProblemSolving
}

type DrillConfig struct {
	Subject       string       `json:"subject"`
	Subtopic      string       `json:"subtopic"`
	Difficulty    Difficulty   `json:"difficulty"`
	Confidence    Confidence   `json:"confidence"`
	QuestionCount int          `json:"questionCount"`
	QuestionType  QuestionType `json:"questionType,omitempty"`
}

// Normalize fills the defaults the setup form would preselect.
func (c DrillConfig) Normalize() DrillConfig {
	c.Subject = strings.TrimSpace(c.Subject)
	c.Subtopic = strings.TrimSpace(c.Subtopic)
	if c.Difficulty == "" {
		c.Difficulty = Intermediate
	}
	if c.Confidence == "" {
		c.Confidence = ReadyToMaster
	}
	if c.QuestionType == "" {
		c.QuestionType = Conceptual
	}
	return c
}

func (c DrillConfig) Validate() error {
	if c.Subject == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidConfig)
	}
	if c.Subtopic == "" {
		return fmt.Errorf("%w: subtopic is required", ErrInvalidConfig)
	}
	if c.QuestionCount <= 0 || c.QuestionCount%BatchSize != 0 || c.QuestionCount > MaxQuestionCount {
		return fmt.Errorf("%w: question count must be a positive multiple of %d up to %d, got %d",
			ErrInvalidConfig, BatchSize, MaxQuestionCount, c.QuestionCount)
	}
	if !c.Difficulty.IsValid() {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, c.Difficulty)
	}
	if !c.Confidence.IsValid() {
		return fmt.Errorf("%w: unknown confidence %q", ErrInvalidConfig, c.Confidence)
	}
	if !c.QuestionType.IsValid() {
		return fmt.Errorf("%w: unknown question type %q", ErrInvalidConfig, c.QuestionType)
	}
	return nil
}
