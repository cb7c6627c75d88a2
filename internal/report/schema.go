package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// resultSchema describes the JSON export shape. Exports from older runs can
// be checked against it before being fed into downstream tooling.
const resultSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "RepoLens analysis result",
  "type": "object",
  "required": ["total_files", "total_lines", "total_characters", "by_extension"],
  "properties": {
    "total_files": {"type": "integer", "minimum": 0},
    "total_lines": {"type": "integer", "minimum": 0},
    "total_characters": {"type": "integer", "minimum": 0},
    "by_extension": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["files", "lines", "characters"],
        "properties": {
          "files": {"type": "integer", "minimum": 0},
          "lines": {"type": "integer", "minimum": 0},
          "characters": {"type": "integer", "minimum": 0}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

const schemaURL = "repolens://schema/analysis-result.json"

func compiledSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(resultSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to parse result schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to register result schema: %w", err)
	}
	return compiler.Compile(schemaURL)
}

// ValidateExport checks a JSON export file against the result schema.
func ValidateExport(path string) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	instance, err := jsonschema.UnmarshalJSON(f)
	if err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("%s does not match the analysis result schema: %w", path, err)
	}
	return nil
}
