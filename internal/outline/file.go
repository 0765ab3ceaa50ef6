package outline

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed outline.schema.json
var schemaJSON string

const schemaURL = "outline.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// Encode marshals o after checking it against the outline schema.
func Encode(o Outline) ([]byte, error) {
	if o.Sections == nil {
		o.Sections = []Section{}
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := validateJSON(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Decode unmarshals an outline, rejecting documents that break the schema.
func Decode(b []byte) (Outline, error) {
	if err := validateJSON(b); err != nil {
		return Outline{}, err
	}
	var o Outline
	if err := json.Unmarshal(b, &o); err != nil {
		return Outline{}, err
	}
	if err := o.Validate(); err != nil {
		return Outline{}, err
	}
	return o, nil
}

func validateJSON(b []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("failed to compile outline schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("failed to normalize outline for schema validation: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("outline schema validation failed: %w", err)
	}
	return nil
}

func SaveFile(path string, o Outline) error {
	b, err := Encode(o)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	b = append(b, '\n')
	return os.WriteFile(path, b, 0644)
}

func LoadFile(path string) (Outline, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Outline{}, err
	}
	return Decode(b)
}
