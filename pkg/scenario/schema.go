package scenario

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema is the JSON Schema every fixture must satisfy before it is
// decoded into a Document.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "mocks"],
  "properties": {
    "version": {"const": "1"},
    "name": {"type": "string"},
    "mocks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "setups"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "behavior": {"enum": ["loose", "strict"]},
          "setups": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["signature"],
              "properties": {
                "signature": {"type": "string", "minLength": 1},
                "args": {"type": "array"},
                "returnsInOrder": {"type": "array"},
                "throws": {"type": "string"},
                "out": {
                  "type": "object",
                  "propertyNames": {"pattern": "^[0-9]+$"}
                },
                "verifiable": {"type": "boolean"}
              }
            }
          }
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("scenario.json", strings.NewReader(documentSchema)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = compiler.Compile("scenario.json")
	})
	return schema, schemaErr
}

// validateDocument checks a generic decoded document against the schema.
// The value is round-tripped through JSON so YAML-decoded types line up with
// what the schema validator expects.
func validateDocument(doc any) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("scenario schema is invalid: %w", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("scenario is not JSON-representable: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return err
	}

	if err := s.Validate(normalized); err != nil {
		var ve *jsonschema.ValidationError
		if ok := asValidationError(err, &ve); ok {
			return fmt.Errorf("invalid scenario: %s", flattenSchemaError(ve))
		}
		return fmt.Errorf("invalid scenario: %w", err)
	}
	return nil
}

func asValidationError(err error, target **jsonschema.ValidationError) bool {
	ve, ok := err.(*jsonschema.ValidationError)
	if ok {
		*target = ve
	}
	return ok
}

// flattenSchemaError walks to the deepest causes so the message names the
// offending field instead of the document root.
func flattenSchemaError(err *jsonschema.ValidationError) string {
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		return fmt.Sprintf("%s: %s", loc, err.Message)
	}
	var msgs []string
	for _, cause := range err.Causes {
		msgs = append(msgs, flattenSchemaError(cause))
	}
	return strings.Join(msgs, "; ")
}
