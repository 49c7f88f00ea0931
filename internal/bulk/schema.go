package bulk

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// buildApplicationRowSchema returns the JSON-Schema (draft 2020-12 subset)
// an import row must satisfy before it touches the database.
func buildApplicationRowSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"full_name":      map[string]any{"type": "string", "minLength": 1},
			"email":          map[string]any{"type": "string", "minLength": 3, "pattern": `^[^@\s]+@[^@\s]+\.[^@\s]+$`},
			"student_number": map[string]any{"type": "string"},
		},
		"required": []string{"full_name", "email"},
	}
}

// compileSchema compiles a schema map into a reusable validator.
func compileSchema(schemaMap map[string]any) (*jsonschema.Schema, error) {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}
