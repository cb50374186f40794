package assess

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema describes the JSON structure a service response must conform to.
type Schema struct {
	// Name identifies this schema in error messages and the compile cache.
	Name string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateBody validates a raw response body against the given Schema.
// Returns *ErrInvalidResponse on malformed JSON or a contract violation.
func validateBody(endpoint string, schema *Schema, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{
			Endpoint: endpoint,
			Body:     raw,
			Err:      fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{
			Endpoint: endpoint,
			Body:     raw,
			Err:      fmt.Errorf("compile schema %q: %w", schema.Name, err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{
			Endpoint: endpoint,
			Body:     raw,
			Err:      fmt.Errorf("contract violation: %w", err),
		}
	}

	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}

// checkAnalysis enforces the cross-field constraints the schema cannot
// express: unique question IDs within the snapshot.
func checkAnalysis(a *Analysis) error {
	seen := make(map[string]bool, len(a.Questions))
	for _, q := range a.Questions {
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
	}
	return nil
}

// checkResults enforces marksObtained <= maxMarks for every answer score.
func checkResults(r *Results) error {
	for _, as := range r.AnswerScores {
		if as.MarksObtained > as.MaxMarks {
			return fmt.Errorf("question %s: marks obtained %.2f exceeds max marks %.2f",
				as.QuestionID, as.MarksObtained, as.MaxMarks)
		}
	}
	return nil
}
