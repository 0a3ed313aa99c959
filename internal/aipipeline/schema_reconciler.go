package aipipeline

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

type FieldKind string

const (
	FieldArray  FieldKind = "array"
	FieldObject FieldKind = "object"
	FieldString FieldKind = "string"
)

type Field struct {
	Name string
	Kind FieldKind
}

// Schema names the top-level fields a use case requires. Element-level checks
// belong to the domain reconcile functions.
type Schema struct {
	Name     string
	Required []Field

	compiled *gojsonschema.Schema
}

// MustSchema compiles a schema descriptor and panics if it is malformed.
// Descriptors are package-level literals, so a panic is a programming error.
func MustSchema(name string, fields ...Field) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func NewSchema(name string, fields ...Field) (*Schema, error) {
	properties := make(map[string]any, len(fields))
	required := make([]string, 0, len(fields))
	for _, f := range fields {
		properties[f.Name] = map[string]any{"type": string(f.Kind)}
		required = append(required, f.Name)
	}

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(map[string]any{
		"$schema":    "http://json-schema.org/draft-07/schema#",
		"title":      name,
		"type":       "object",
		"properties": properties,
		"required":   required,
	}))
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}

	return &Schema{Name: name, Required: fields, compiled: compiled}, nil
}

// Validate reports a ReconciliationFailure when doc lacks a required field or
// a field holds the wrong container kind.
func (s *Schema) Validate(doc Document) error {
	if doc == nil {
		return reconciliationError("%s: empty document", s.Name)
	}

	result, err := s.compiled.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return &Error{Kind: KindReconciliationFailure, Err: fmt.Errorf("%s: %w", s.Name, err)}
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return reconciliationError("%s: %s", s.Name, strings.Join(msgs, "; "))
}
