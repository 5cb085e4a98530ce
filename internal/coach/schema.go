package coach

import "github.com/patenteapp/patente/internal/llm"

// ExplanationSchema defines the JSON schema for question explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "question-explanation",
	Description: "An Arabic explanation of an Italian driving-theory question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "Clear Arabic explanation of why the answer is right or wrong (3-5 sentences)",
			},
			"keywords": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-5 important Italian words from the question worth memorizing",
			},
			"tip": map[string]any{
				"type":        "string",
				"description": "One short Arabic study tip for remembering this rule",
			},
		},
		"required":             []any{"explanation", "keywords", "tip"},
		"additionalProperties": false,
	},
}
