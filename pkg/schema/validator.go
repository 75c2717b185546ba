// Package schema validates YAML/JSON documents against JSON Schemas,
// including the schemas embedded in the weedoc binary.
package schema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"sync"

	"github.com/fulmenhq/weedoc/internal/assets"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Result holds the validation result.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error.
type ValidationError struct {
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// registry caches compiled embedded schemas by name for reuse
var (
	schemaRegistry map[string]*gojsonschema.Schema
	schemaPaths    map[string]string // name -> embed path
	regMu          sync.RWMutex
)

// Validator wraps a compiled schema for repeated validation.
type Validator struct {
	schema *gojsonschema.Schema
}

func init() {
	schemaRegistry = make(map[string]*gojsonschema.Schema)
	schemaPaths = make(map[string]string)
	compileKnownSchemas()
}

func compileKnownSchemas() {
	for _, info := range assets.GetSchemaNames() {
		if data, ok := assets.GetSchema(info.Path); ok {
			if sch, err := compileSchemaBytes(data); err == nil {
				regMu.Lock()
				schemaRegistry[info.Name] = sch
				schemaPaths[info.Name] = info.Path
				regMu.Unlock()
			}
		}
	}
}

func compileSchemaBytes(schemaBytes []byte) (*gojsonschema.Schema, error) {
	// Try YAML first; if it parses, convert to canonical JSON bytes for loader
	var tmp any
	if err := yaml.Unmarshal(schemaBytes, &tmp); err == nil {
		jb, jerr := json.Marshal(tmp)
		if jerr != nil {
			return nil, fmt.Errorf("failed to encode schema to JSON: %w", jerr)
		}
		loader := gojsonschema.NewBytesLoader(jb)
		sch, err := gojsonschema.NewSchema(loader)
		if err != nil {
			return nil, fmt.Errorf("failed to load schema: %w", err)
		}
		return sch, nil
	}
	// Fall back to JSON bytes directly
	loader := gojsonschema.NewBytesLoader(schemaBytes)
	sch, err := gojsonschema.NewSchema(loader)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}
	return sch, nil
}

// NewValidatorFromBytes compiles schema bytes (JSON or YAML) into a reusable validator.
func NewValidatorFromBytes(schemaBytes []byte) (*Validator, error) {
	sch, err := compileSchemaBytes(schemaBytes)
	if err != nil {
		return nil, err
	}
	return &Validator{schema: sch}, nil
}

// NewValidatorFromFS loads a schema from the provided filesystem and path.
func NewValidatorFromFS(fsys fs.FS, schemaPath string) (*Validator, error) {
	data, err := fs.ReadFile(fsys, schemaPath)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", schemaPath, err)
	}
	return NewValidatorFromBytes(data)
}

// NewValidatorFromEmbeddedPath loads a schema from weedoc's embedded schema assets.
func NewValidatorFromEmbeddedPath(relPath string) (*Validator, error) {
	data, ok := assets.GetSchema(relPath)
	if !ok || len(data) == 0 {
		return nil, fmt.Errorf("embedded schema not found: %s", relPath)
	}
	return NewValidatorFromBytes(data)
}

// GetEmbeddedValidator returns a validator for a named embedded schema (e.g., snapshot-v1.0.0).
func GetEmbeddedValidator(schemaName string) (*Validator, error) {
	regMu.RLock()
	if sch, ok := schemaRegistry[schemaName]; ok {
		regMu.RUnlock()
		return &Validator{schema: sch}, nil
	}
	path := schemaPaths[schemaName]
	regMu.RUnlock()

	if path == "" {
		return nil, fmt.Errorf("schema %s not found", schemaName)
	}

	data, ok := assets.GetSchema(path)
	if !ok || len(data) == 0 {
		return nil, fmt.Errorf("schema %s not found", schemaName)
	}

	sch, err := compileSchemaBytes(data)
	if err != nil {
		return nil, err
	}

	regMu.Lock()
	schemaRegistry[schemaName] = sch
	regMu.Unlock()

	return &Validator{schema: sch}, nil
}

// Validate applies the compiled schema to the provided data structure.
func (v *Validator) Validate(data interface{}) (*Result, error) {
	if v == nil || v.schema == nil {
		return nil, fmt.Errorf("validator not initialised")
	}
	return validateWithCompiled(v.schema, data)
}

// ValidateBytes parses YAML/JSON bytes and validates them against the compiled schema.
func (v *Validator) ValidateBytes(dataBytes []byte) (*Result, error) {
	if v == nil || v.schema == nil {
		return nil, fmt.Errorf("validator not initialised")
	}
	var data interface{}
	if err := yaml.Unmarshal(dataBytes, &data); err != nil {
		if err := json.Unmarshal(dataBytes, &data); err != nil {
			return nil, fmt.Errorf("failed to parse data bytes (YAML/JSON): %w", err)
		}
	}
	return validateWithCompiled(v.schema, data)
}

func validateWithCompiled(sch *gojsonschema.Schema, data interface{}) (*Result, error) {
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode data to JSON: %w", err)
	}
	docLoader := gojsonschema.NewBytesLoader(dataJSON)
	result, err := sch.Validate(docLoader)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	res := &Result{Valid: result.Valid()}
	if !result.Valid() {
		for _, verr := range result.Errors() {
			field := verr.Field()
			if field == "" {
				field = "root"
			}
			res.Errors = append(res.Errors, ValidationError{
				Path:    field,
				Message: verr.Description(),
			})
		}
	}
	return res, nil
}

// Validate validates data against the named embedded schema.
func Validate(data interface{}, schemaName string) (*Result, error) {
	validator, err := GetEmbeddedValidator(schemaName)
	if err != nil {
		return nil, err
	}
	return validator.Validate(data)
}
