package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const documentSchemaURL = "projlib://document.schema.json"

// documentSchema describes the persisted library. Unknown keys are
// tolerated; required keys and status tokens are not.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["projects"],
  "properties": {
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "description", "status"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "status": {"enum": ["finished", "in_progress", "idea", "paused"]}
        }
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString(documentSchemaURL, documentSchema)

// validateSchema checks a generically decoded document. The value is
// round-tripped through JSON so TOML table arrays become []interface{}.
func validateSchema(raw map[string]interface{}) error {
	data, err := json.Marshal(jsonSafe(raw))
	if err != nil {
		return &SchemaError{Err: fmt.Errorf("normalizing document: %w", err)}
	}
	var obj interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return &SchemaError{Err: fmt.Errorf("normalizing document: %w", err)}
	}

	err = compiledSchema.Validate(obj)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &SchemaError{Err: err}
	}
	leaf := firstLeaf(ve)
	return &SchemaError{
		Field: pointerToField(leaf.InstanceLocation),
		Err:   errors.New(leaf.Message),
	}
}

// jsonSafe copies v with inf and nan floats replaced by nil, which JSON
// cannot represent. Such values are legal TOML in keys the schema ignores.
func jsonSafe(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = jsonSafe(e)
		}
		return out
	case []map[string]interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = jsonSafe(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = jsonSafe(e)
		}
		return out
	case float64:
		if math.IsInf(t, 0) || math.IsNaN(t) {
			return nil
		}
	}
	return v
}

func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

// pointerToField turns "/projects/0/status" into "projects[0].status".
func pointerToField(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for i, part := range strings.Split(ptr, "/") {
		if isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteString(".")
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
