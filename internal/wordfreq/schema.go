// internal/wordfreq/schema.go
package wordfreq

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// archiveSchema describes the accepted export shape: an object whose
// messagesField is an array of objects, each with an optional string
// contentField. Other fields are allowed and ignored.
func archiveSchema(messagesField, contentField string) map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{messagesField},
		"properties": map[string]any{
			messagesField: map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						contentField: map[string]any{
							"type": []any{"string", "null"},
						},
					},
				},
			},
		},
	}
}

func compileArchiveSchema(messagesField, contentField string) (*gojsonschema.Schema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(archiveSchema(messagesField, contentField)))
	if err != nil {
		return nil, fmt.Errorf("compile archive schema: %w", err)
	}
	return schema, nil
}

// validateArchive checks data against schema. A document that is not JSON at
// all surfaces as the returned error, same as a shape violation.
func validateArchive(schema *gojsonschema.Schema, data []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("document failed validation: %s", strings.Join(details, "; "))
}
