package protocol

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"path"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

const schemaBase = "https://wanderer.local/schemas/"

// schemaFiles maps message types to their schema file.
var schemaFiles = map[string]string{
	TypeHello:    "hello.schema.json",
	TypeIntent:   "intent.schema.json",
	TypeWelcome:  "welcome.schema.json",
	TypeSnapshot: "snapshot.schema.json",
}

// Validator checks raw messages against the embedded JSON Schemas. It is
// safe for concurrent use once built.
type Validator struct {
	schemas map[string]*jsonschema.Schema
}

// NewValidator compiles every embedded schema.
func NewValidator() (*Validator, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("protocol: read schemas: %w", err)
	}
	for _, e := range entries {
		b, err := schemaFS.ReadFile(path.Join("schemas", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("protocol: read schema %s: %w", e.Name(), err)
		}
		if err := c.AddResource(schemaBase+e.Name(), bytes.NewReader(b)); err != nil {
			return nil, fmt.Errorf("protocol: add schema %s: %w", e.Name(), err)
		}
	}

	v := &Validator{schemas: make(map[string]*jsonschema.Schema, len(schemaFiles))}
	for typ, name := range schemaFiles {
		s, err := c.Compile(schemaBase + name)
		if err != nil {
			return nil, fmt.Errorf("protocol: compile %s: %w", name, err)
		}
		v.schemas[typ] = s
	}
	return v, nil
}

// Validate checks raw against the schema for msgType.
func (v *Validator) Validate(msgType string, raw []byte) error {
	s, ok := v.schemas[msgType]
	if !ok {
		return fmt.Errorf("protocol: no schema for message type %q", msgType)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("protocol: decode %s: %w", msgType, err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("protocol: invalid %s: %w", msgType, err)
	}
	return nil
}

// ValidateValue marshals msg and validates the result.
func (v *Validator) ValidateValue(msgType string, msg any) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("protocol: encode %s: %w", msgType, err)
	}
	return v.Validate(msgType, raw)
}
