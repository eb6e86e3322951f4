package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func explanationSchema() *Schema {
	return &Schema{
		Name: "test-explanation",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"why_good":   map[string]any{"type": "string"},
				"why_failed": map[string]any{"type": "string"},
			},
			"required":             []any{"why_good", "why_failed"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_NilSchemaAlwaysPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema must pass: %v", err)
	}
}

func TestValidateResponse_ValidDocument(t *testing.T) {
	raw := json.RawMessage(`{"why_good": "controls the center", "why_failed": "hangs the queen"}`)
	if err := validateResponse(explanationSchema(), raw); err != nil {
		t.Fatalf("expected valid document to pass: %v", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{"why_good": "controls the center"}`)
	err := validateResponse(explanationSchema(), raw)
	if err == nil {
		t.Fatal("expected validation error for missing field")
	}
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(explanationSchema(), json.RawMessage(`{"why_good": `))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse for malformed JSON, got: %v", err)
	}
}
