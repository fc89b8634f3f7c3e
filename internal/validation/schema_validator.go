// Package validation checks JSON documents against JSON schemas compiled once
// and cached by name.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON data against registered JSON schemas
type SchemaValidator interface {
	// AddSchema compiles schema and registers it under name.
	AddSchema(name string, schema []byte) error
	ValidateBytes(data []byte, name string) error
}

type validator struct {
	mu       sync.RWMutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

func (v *validator) AddSchema(name string, schema []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgParseSchema, name, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.schemas[name]; ok {
		return nil
	}
	if err := v.compiler.AddResource(name, doc); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgAddSchema, name, err)
	}
	compiled, err := v.compiler.Compile(name)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgCompileSchema, name, err)
	}
	v.schemas[name] = compiled
	return nil
}

// ValidateBytes validates JSON data bytes against the schema registered as name
func (v *validator) ValidateBytes(data []byte, name string) error {
	v.mu.RLock()
	schema, ok := v.schemas[name]
	v.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%s: %s", ErrMsgUnknownSchema, name)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgParseData, err)
	}

	if err := schema.Validate(inst); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError flattens the error tree into one line per failing location
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("%s: %w", ErrMsgValidation, err)
	}

	var problems []string
	collectErrors(validationErr, &problems)
	return fmt.Errorf("%w:\n%s", ErrSchemaValidation, strings.Join(problems, "\n"))
}

func collectErrors(err *jsonschema.ValidationError, problems *[]string) {
	// Leaves carry the useful detail; parents only say "a cause failed"
	if len(err.Causes) == 0 {
		*problems = append(*problems, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, problems)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")
	if len(err.InstanceLocation) == 0 {
		location = "(root)"
	}

	keywords := ""
	if err.ErrorKind != nil {
		keywords = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	if keywords == "" {
		return fmt.Sprintf("  - at %s: validation failed", location)
	}
	return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
}
