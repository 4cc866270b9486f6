package quiz

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Manifest is the fixed, ordered question set the backend issues at
// session start. The question order never changes after load.
type Manifest struct {
	SessionID string      `json:"session_id"`
	Kind      SessionKind `json:"kind"`
	Questions []Question  `json:"questions"`
}

// manifestSchema is the JSON Schema a manifest payload must satisfy
// before it is trusted. Structural checks only; per-question semantic
// checks live in Question.Validate.
var manifestSchema = map[string]any{
	"type":     "object",
	"required": []any{"session_id", "kind", "questions"},
	"properties": map[string]any{
		"session_id": map[string]any{"type": "string", "minLength": 1},
		"kind": map[string]any{
			"type": "string",
			"enum": []any{"daily", "chapter_practice", "unlock", "follow_up", "weak_spot"},
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "kind"},
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "minLength": 1},
					"subject":     map[string]any{"type": "string"},
					"chapter":     map[string]any{"type": "string"},
					"prompt":      map[string]any{"type": "string"},
					"prompt_html": map[string]any{"type": "string"},
					"kind": map[string]any{
						"type": "string",
						"enum": []any{"multiple_choice", "numerical"},
					},
					"options": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"id", "text"},
							"properties": map[string]any{
								"id":   map[string]any{"type": "string"},
								"text": map[string]any{"type": "string"},
							},
						},
					},
					"image_url": map[string]any{"type": "string"},
				},
			},
		},
	},
}

var (
	compiledManifestSchema *jsonschema.Schema
	compileManifestOnce    sync.Once
	compileManifestErr     error
)

// compiledSchema compiles the manifest schema once and caches it.
func compiledSchema() (*jsonschema.Schema, error) {
	compileManifestOnce.Do(func() {
		defBytes, err := json.Marshal(manifestSchema)
		if err != nil {
			compileManifestErr = fmt.Errorf("marshal manifest schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(defBytes, &parsed); err != nil {
			compileManifestErr = fmt.Errorf("parse manifest schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://quiz-manifest.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileManifestErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledManifestSchema, compileManifestErr = c.Compile(url)
	})
	return compiledManifestSchema, compileManifestErr
}

// ParseManifest validates raw JSON against the manifest schema and
// decodes it. A payload that fails validation is rejected wholesale;
// individually malformed questions survive parsing and are handled by
// the session layer via Validate.
func ParseManifest(raw []byte) (*Manifest, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid manifest JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("manifest schema validation failed: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}
