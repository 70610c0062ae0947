package generate

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionSetSchema constrains the array the model must return before
// it is trusted as a question set.
var questionSetSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 2,
			},
			"correct_answer_index": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
			"explanation": map[string]any{
				"type": "string",
			},
		},
		"required": []any{"question", "options", "correct_answer_index"},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateQuestionJSON checks raw JSON against the question set schema.
func validateQuestionJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://question-set.json", questionSetSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://question-set.json")
	})
	if compileErr != nil {
		return fmt.Errorf("compile question set schema: %w", compileErr)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("question set rejected: %w", err)
	}
	return nil
}
