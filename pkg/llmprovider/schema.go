package llmprovider

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
)

// Type is a JSON value type in a Schema.
type Type string

const (
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
)

// Schema declares the shape of a structured model response. It is sent to the
// provider to constrain generation and checked again locally by DecodeObject.
type Schema struct {
	Type        Type
	Description string
	Nullable    bool
	Enum        []string
	Properties  map[string]*Schema
	Required    []string
	Items       *Schema

	// Ordering is the property order hinted to the model.
	Ordering []string
}

// ToGemini renders the schema in the OpenAPI subset accepted by Gemini's responseSchema.
func (s *Schema) ToGemini() map[string]any {
	if s == nil {
		return nil
	}

	out := map[string]any{"type": strings.ToUpper(string(s.Type))}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if s.Nullable {
		out["nullable"] = true
	}
	if len(s.Enum) > 0 {
		out["format"] = "enum"
		out["enum"] = slices.Clone(s.Enum)
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.ToGemini()
		}
		out["properties"] = props
	}
	if len(s.Required) > 0 {
		out["required"] = slices.Clone(s.Required)
	}
	if len(s.Ordering) > 0 {
		out["propertyOrdering"] = slices.Clone(s.Ordering)
	}
	if s.Items != nil {
		out["items"] = s.Items.ToGemini()
	}
	return out
}

// Validate checks a decoded JSON value against the schema.
func (s *Schema) Validate(v any) error {
	return s.validate("$", v)
}

func (s *Schema) validate(path string, v any) error {
	if v == nil {
		if s.Nullable {
			return nil
		}
		return fmt.Errorf("%s: null is not allowed", path)
	}

	switch s.Type {
	case TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object, got %T", path, v)
		}
		for _, name := range s.Required {
			if _, ok := obj[name]; !ok {
				return fmt.Errorf("%s.%s: required field is missing", path, name)
			}
		}
		for name, prop := range s.Properties {
			val, ok := obj[name]
			if !ok {
				continue
			}
			if err := prop.validate(path+"."+name, val); err != nil {
				return err
			}
		}

	case TypeArray:
		arr, ok := v.([]any)
		if !ok {
			return fmt.Errorf("%s: expected array, got %T", path, v)
		}
		if s.Items != nil {
			for i, item := range arr {
				if err := s.Items.validate(fmt.Sprintf("%s[%d]", path, i), item); err != nil {
					return err
				}
			}
		}

	case TypeString:
		str, ok := v.(string)
		if !ok {
			return fmt.Errorf("%s: expected string, got %T", path, v)
		}
		if len(s.Enum) > 0 && !slices.Contains(s.Enum, str) {
			return fmt.Errorf("%s: %q is not one of %v", path, str, s.Enum)
		}

	case TypeInteger:
		n, ok := v.(float64)
		if !ok || n != math.Trunc(n) {
			return fmt.Errorf("%s: expected integer, got %v", path, v)
		}

	case TypeNumber:
		if _, ok := v.(float64); !ok {
			return fmt.Errorf("%s: expected number, got %T", path, v)
		}

	case TypeBoolean:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("%s: expected boolean, got %T", path, v)
		}
	}

	return nil
}

// DecodeObject sanitizes text, validates it against schema and unmarshals it into out.
// A nil schema skips validation.
func DecodeObject(text string, schema *Schema, out any) error {
	clean := SanitizeJSON(text)

	if schema != nil {
		var raw any
		if err := json.Unmarshal([]byte(clean), &raw); err != nil {
			return fmt.Errorf("%w: invalid JSON: %v", ErrSchemaMismatch, err)
		}
		if err := schema.Validate(raw); err != nil {
			return fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
		}
	}

	if err := json.Unmarshal([]byte(clean), out); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	return nil
}

var codeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// SanitizeJSON removes markdown code fences and leading/trailing prose
// that models often add around JSON output.
func SanitizeJSON(text string) string {
	if matches := codeFence.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}
