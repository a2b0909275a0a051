package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "recap",
		Description: "A short recap.",
		Definition: map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"count": map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []string{"title", "count"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"conforming document", `{"title": "notes", "count": 3}`, false},
		{"missing required field", `{"title": "notes"}`, true},
		{"wrong type", `{"title": "notes", "count": "three"}`, true},
		{"constraint violation", `{"title": "notes", "count": -1}`, true},
		{"extra property", `{"title": "notes", "count": 3, "junk": true}`, true},
		{"not json at all", `hello there`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidResponse, got %v", err)
			}
			if string(invalid.Content) != tt.raw {
				t.Error("ErrInvalidResponse does not carry the offending content")
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema must skip validation, got %v", err)
	}
}

func TestCompiledSchemaIsCached(t *testing.T) {
	schema := testSchema()
	schema.Name = "cache-probe"

	first, err := compileSchema(schema)
	if err != nil {
		t.Fatal(err)
	}
	second, err := compileSchema(schema)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("second compile did not hit the cache")
	}
}
