package quiz

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/saulo-duarte/ai-mastery-drill/internal/apperr"
)

const (
	QuestionSchema = `{
		"type": "object",
		"properties": {
			"question": {"type": "string", "minLength": 1},
			"options": {"type": "array", "items": {"type": "string", "minLength": 1}, "minItems": 4, "maxItems": 4},
			"correctAnswer": {"type": "integer", "minimum": 0, "maximum": 3},
			"explanation": {"type": "string"}
		},
		"required": ["question", "options", "correctAnswer"]
	}`

	AnalysisSchema = `{
		"type": "object",
		"properties": {
			"summary": {"type": "string"},
			"laggingAreas": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"area": {"type": "string", "minLength": 1},
						"description": {"type": "string"},
						"priority": {"type": "string", "enum": ["high", "medium", "low"]}
					},
					"required": ["area", "description", "priority"]
				}
			},
			"recommendations": {"type": "array", "items": {"type": "string"}}
		},
		"required": ["summary", "laggingAreas", "recommendations"]
	}`
)

var QuestionBatchSchema = fmt.Sprintf(`{"type":"array","items":%s}`, QuestionSchema)

// ParseQuestions decodes a provider reply into questions after checking it
// against QuestionBatchSchema.
func ParseQuestions(raw []byte) ([]Question, error) {
	if err := validate(QuestionBatchSchema, raw); err != nil {
		return nil, err
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrMalformedResponse, err)
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", apperr.ErrMalformedResponse, i+1, err)
		}
	}
	return questions, nil
}

func ParseAnalysis(raw []byte) (*AnalysisResult, error) {
	if err := validate(AnalysisSchema, raw); err != nil {
		return nil, err
	}

	var analysis AnalysisResult
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrMalformedResponse, err)
	}
	return &analysis, nil
}

func validate(schema string, raw []byte) error {
	if !json.Valid(raw) {
		return fmt.Errorf("%w: reply is not valid JSON", apperr.ErrMalformedResponse)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrMalformedResponse, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", apperr.ErrMalformedResponse, strings.Join(msgs, "; "))
	}
	return nil
}
