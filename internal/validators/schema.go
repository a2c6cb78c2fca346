package validators

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"
)

// rootField is how gojsonschema names the document itself.
const rootField = "(root)"

//go:embed schemas/*.json
var schemaFS embed.FS

// SchemaValidator validates documents with JSON Schemas compiled once at
// construction. It is safe for concurrent use.
type SchemaValidator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewSchemaValidator compiles every embedded schema.
func NewSchemaValidator() (*SchemaValidator, error) {
	return NewSchemaValidatorFromFS(schemaFS, "schemas")
}

// NewSchemaValidatorFromFS compiles every *.json file in dir of fsys. Each
// file must declare a unique "$id".
func NewSchemaValidatorFromFS(fsys fs.FS, dir string) (*SchemaValidator, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read schema dir: %w", err)
	}

	type schemaHeader struct {
		ID string `json:"$id"`
	}

	v := &SchemaValidator{schemas: make(map[string]*gojsonschema.Schema)}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		raw, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("cannot read schema '%s': %w", entry.Name(), err)
		}

		var header schemaHeader
		if err = json.Unmarshal(raw, &header); err != nil {
			return nil, fmt.Errorf("parse error in schema '%s': %w", entry.Name(), err)
		}
		if header.ID == "" {
			return nil, fmt.Errorf("schema '%s' does not contain $id", entry.Name())
		}
		if _, ok := v.schemas[header.ID]; ok {
			return nil, fmt.Errorf("duplicate schema $id '%s'", header.ID)
		}

		compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("cannot compile schema '%s': %w", header.ID, err)
		}
		v.schemas[header.ID] = compiled
	}

	return v, nil
}

// HasSchema reports whether schemaID is known.
func (v *SchemaValidator) HasSchema(schemaID string) bool {
	_, ok := v.schemas[schemaID]
	return ok
}

// Validate implements [Validator]. A document that is not JSON is rejected
// with a *ValidationError like any other invalid document.
func (v *SchemaValidator) Validate(ctx context.Context, schemaID string, document []byte) error {
	schema, ok := v.schemas[schemaID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, schemaID)
	}

	if !json.Valid(document) {
		return &ValidationError{Details: []string{"Invalid JSON body"}}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*SchemaValidator.Validate").Str("schema", schemaID).Msg("document could not be loaded")
		return &ValidationError{Details: []string{"Invalid JSON body"}}
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		details = append(details, describe(e))
	}
	return &ValidationError{Details: details}
}

// describe renders e as "<field>: <description>", leaving out the field for
// errors about the document root.
func describe(e gojsonschema.ResultError) string {
	if e.Field() == rootField || e.Field() == "" {
		return e.Description()
	}
	return e.Field() + ": " + e.Description()
}
