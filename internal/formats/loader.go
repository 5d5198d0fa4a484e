package formats

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed format_pack.schema.json
var packSchema string

// LoadFile overlays the registry with format specs from an admin-managed
// JSON pack. The file is validated against the embedded JSON Schema before
// any spec is registered, so a malformed pack can never partially apply.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &PackError{Path: path, Message: "read failed", Cause: err}
	}

	if err := validatePack(data); err != nil {
		return &PackError{Path: path, Message: "schema validation failed", Cause: err}
	}

	var specs []Spec
	if err := json.Unmarshal(data, &specs); err != nil {
		return &PackError{Path: path, Message: "parse failed", Cause: err}
	}

	// Validate everything before registering anything.
	for _, spec := range specs {
		if err := spec.Validate(); err != nil {
			return &PackError{Path: path, Message: "invalid spec", Cause: err}
		}
	}
	for _, spec := range specs {
		if err := r.register(spec); err != nil {
			return &PackError{Path: path, Message: "register failed", Cause: err}
		}
	}
	return nil
}

// validatePack checks raw pack JSON against the embedded schema and reports
// every field error, not just the first.
func validatePack(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(packSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema load: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("pack does not match schema:")
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		sb.WriteString(fmt.Sprintf("\n  %s: %s", field, desc.Description()))
	}
	return fmt.Errorf("%s", sb.String())
}
