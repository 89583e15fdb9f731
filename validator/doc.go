// Package validator checks JSON values against a declarative schema.
//
// Validate never fails for data/schema mismatches: it always returns a
// complete ValidationResult listing every problem found, each carrying a
// path in the path engine's addressing syntax so callers can act on
// reported locations directly.
//
//	schema := validator.SchemaFromValue(schemaDoc)
//	result := validator.Validate(doc, schema)
//	if !result.Valid {
//	    for _, e := range result.Errors {
//	        fmt.Println(e.String())
//	    }
//	}
//
// The schema vocabulary is the common subset of JSON Schema: type,
// properties, items, required, enum, const, numeric and length bounds,
// pattern, format (email, url, date, date-time, uuid), uniqueItems,
// additionalProperties, and property-count bounds. Malformed schema values
// (for example a non-object properties) are treated defensively: they
// simply produce no additional checks rather than an error.
//
// A type mismatch reports one error and stops descending into that subtree,
// since children cannot be meaningfully validated against a schema that
// assumed a different shape. Unknown format names produce a warning rather
// than an error, keeping Valid true.
package validator
