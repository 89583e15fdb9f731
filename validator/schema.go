package validator

// Schema describes the expected shape of a JSON value. The zero value
// imposes no constraints; nil pointers mean the keyword is absent.
type Schema struct {
	// Type is the expected JSON type: "object", "array", "string",
	// "number", "integer", "boolean", or "null". Empty matches any type.
	Type string
	// Properties maps object property names to their schemas.
	Properties map[string]*Schema
	// Items is the schema every array element must satisfy.
	Items *Schema
	// Required lists object property names that must be present.
	Required []string
	// Enum restricts the value to one of its members.
	Enum []any
	// Const restricts the value to exactly ConstValue when HasConst is set.
	// The flag distinguishes "const: null" from an absent const.
	ConstValue any
	HasConst   bool

	// Numeric bounds.
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
	MultipleOf       *float64

	// String constraints.
	MinLength *int
	MaxLength *int
	Pattern   string
	Format    string

	// Array constraints.
	MinItems    *int
	MaxItems    *int
	UniqueItems bool

	// Object constraints. AdditionalProperties false flags undeclared keys.
	AdditionalProperties *bool
	MinProperties        *int
	MaxProperties        *int
}

// SchemaFromValue builds a Schema from a schema document (a decoded JSON
// object). Unknown keywords and malformed values are ignored rather than
// rejected, so a partially valid schema still yields its usable checks.
// A non-object input yields an unconstrained schema.
func SchemaFromValue(v any) *Schema {
	s := &Schema{}
	obj, ok := v.(map[string]any)
	if !ok {
		return s
	}

	if t, ok := obj["type"].(string); ok {
		s.Type = t
	}
	if props, ok := obj["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*Schema, len(props))
		for name, sub := range props {
			s.Properties[name] = SchemaFromValue(sub)
		}
	}
	if items, ok := obj["items"].(map[string]any); ok {
		s.Items = SchemaFromValue(items)
	}
	if req, ok := obj["required"].([]any); ok {
		for _, r := range req {
			if name, ok := r.(string); ok {
				s.Required = append(s.Required, name)
			}
		}
	}
	if enum, ok := obj["enum"].([]any); ok {
		s.Enum = enum
	}
	if c, ok := obj["const"]; ok {
		s.ConstValue = c
		s.HasConst = true
	}

	s.Minimum = floatKeyword(obj, "minimum")
	s.Maximum = floatKeyword(obj, "maximum")
	s.ExclusiveMinimum = floatKeyword(obj, "exclusiveMinimum")
	s.ExclusiveMaximum = floatKeyword(obj, "exclusiveMaximum")
	s.MultipleOf = floatKeyword(obj, "multipleOf")

	s.MinLength = intKeyword(obj, "minLength")
	s.MaxLength = intKeyword(obj, "maxLength")
	if p, ok := obj["pattern"].(string); ok {
		s.Pattern = p
	}
	if f, ok := obj["format"].(string); ok {
		s.Format = f
	}

	s.MinItems = intKeyword(obj, "minItems")
	s.MaxItems = intKeyword(obj, "maxItems")
	if u, ok := obj["uniqueItems"].(bool); ok {
		s.UniqueItems = u
	}

	if ap, ok := obj["additionalProperties"].(bool); ok {
		s.AdditionalProperties = &ap
	}
	s.MinProperties = intKeyword(obj, "minProperties")
	s.MaxProperties = intKeyword(obj, "maxProperties")

	return s
}

func floatKeyword(obj map[string]any, key string) *float64 {
	switch n := obj[key].(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	default:
		return nil
	}
}

func intKeyword(obj map[string]any, key string) *int {
	switch n := obj[key].(type) {
	case float64:
		i := int(n)
		return &i
	case int:
		i := n
		return &i
	default:
		return nil
	}
}
