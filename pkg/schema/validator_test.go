package schema

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestValidate(t *testing.T) {
	// Valid
	validYAML := `
version: 1
commands:
  - plugin: weechat
    name: away
    description: set away status
`
	var validDoc interface{}
	if err := yaml.Unmarshal([]byte(validYAML), &validDoc); err != nil {
		t.Fatalf("failed to parse valid YAML: %v", err)
	}

	res, err := Validate(validDoc, "snapshot-v1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Valid {
		t.Errorf("expected valid, got %v", res.Errors)
	}

	// Invalid - wrong snapshot version
	invalidYAML := `
version: 99
commands: []
`
	var invalidDoc interface{}
	if err := yaml.Unmarshal([]byte(invalidYAML), &invalidDoc); err != nil {
		t.Fatalf("failed to parse invalid YAML: %v", err)
	}

	res, err = Validate(invalidDoc, "snapshot-v1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if res.Valid || len(res.Errors) == 0 {
		t.Error("expected invalid")
	}

	// Non-existent schema
	_, err = Validate(validDoc, "nonexistent")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestGetEmbeddedValidator(t *testing.T) {
	v, err := GetEmbeddedValidator("snapshot-v1.0.0")
	if err != nil {
		t.Fatalf("GetEmbeddedValidator() failed: %v", err)
	}
	if v == nil {
		t.Fatal("expected validator")
	}

	// Second lookup should hit the registry cache
	v2, err := GetEmbeddedValidator("snapshot-v1.0.0")
	if err != nil {
		t.Fatalf("cached lookup failed: %v", err)
	}
	if v2 == nil {
		t.Fatal("expected cached validator")
	}
}

func TestNewValidatorFromBytes(t *testing.T) {
	// Test with simple valid JSON schema and data
	schemaBytes := []byte(`{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"age": {"type": "number"}
		},
		"required": ["name"]
	}`)

	v, err := NewValidatorFromBytes(schemaBytes)
	if err != nil {
		t.Fatalf("NewValidatorFromBytes() failed: %v", err)
	}

	// Test valid data
	result, err := v.ValidateBytes([]byte(`{"name": "test", "age": 30}`))
	if err != nil {
		t.Fatalf("ValidateBytes() failed: %v", err)
	}
	if !result.Valid {
		t.Error("Expected valid data to pass validation")
	}

	// Test invalid data
	result, err = v.ValidateBytes([]byte(`{"age": 30}`))
	if err != nil {
		t.Fatalf("ValidateBytes() failed: %v", err)
	}
	if result.Valid {
		t.Error("Expected invalid data to fail validation")
	}
	if len(result.Errors) == 0 {
		t.Error("Expected validation errors for invalid data")
	}
}

func TestValidateBytesYAMLInput(t *testing.T) {
	v, err := GetEmbeddedValidator("snapshot-v1.0.0")
	if err != nil {
		t.Fatal(err)
	}

	yamlData := []byte("version: 1\noptions:\n  - config: weechat\n    section: look\n    name: buffer_notify_default\n    type: string\n")
	result, err := v.ValidateBytes(yamlData)
	if err != nil {
		t.Fatalf("ValidateBytes() failed for YAML input: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid YAML snapshot, got %v", result.Errors)
	}

	jsonData := []byte(`{"version": 1, "irc_colors": [{"irc": "00", "weechat": "white"}]}`)
	result, err = v.ValidateBytes(jsonData)
	if err != nil {
		t.Fatalf("ValidateBytes() failed for JSON input: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid JSON snapshot, got %v", result.Errors)
	}

	// Garbage bytes parse as a YAML string, which is not an object
	result, err = v.ValidateBytes([]byte("not a snapshot"))
	if err != nil {
		t.Fatalf("ValidateBytes() failed: %v", err)
	}
	if result.Valid {
		t.Error("expected scalar document to fail validation")
	}
}

func TestValidatorNotInitialised(t *testing.T) {
	var v *Validator
	if _, err := v.ValidateBytes([]byte(`{}`)); err == nil {
		t.Error("expected error from nil validator")
	}
	if _, err := v.Validate(map[string]interface{}{}); err == nil {
		t.Error("expected error from nil validator")
	}
}
