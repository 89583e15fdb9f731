package validator

import (
	"fmt"
	"math"
	"regexp"

	"github.com/fauriatjules-max/jsontools/internal/issues"
	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
	"github.com/fauriatjules-max/jsontools/internal/severity"
	"github.com/fauriatjules-max/jsontools/internal/stringutil"
	"github.com/fauriatjules-max/jsontools/jsonpath"
)

// Severity indicates the severity level of a validation issue
type Severity = severity.Severity

const (
	// SeverityError indicates a schema violation that makes the value invalid
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a recommendation that does not affect validity
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
)

const (
	// defaultErrorCapacity is the initial capacity for error slices
	defaultErrorCapacity = 10

	// maxSchemaNestingDepth bounds recursion into nested values to prevent
	// stack overflow on adversarial inputs
	maxSchemaNestingDepth = 100
)

// ValidationError represents a single validation issue
type ValidationError = issues.Issue

// ValidationResult contains the results of validating a value against a schema
type ValidationResult struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool
	// Errors contains all validation errors
	Errors []ValidationError
	// Warnings contains all validation warnings
	Warnings []ValidationError
	// ErrorCount is the total number of errors
	ErrorCount int
	// WarningCount is the total number of warnings
	WarningCount int
}

// Validator validates JSON values against schemas.
type Validator struct {
	// MaxDepth bounds recursion into nested values.
	MaxDepth int
}

// New creates a Validator with default settings.
func New() *Validator {
	return &Validator{MaxDepth: maxSchemaNestingDepth}
}

// Validate checks doc against schema with default settings.
func Validate(doc any, schema *Schema) *ValidationResult {
	return New().Validate(doc, schema)
}

// Validate checks doc against schema. It never fails for data mismatches;
// every problem found is accumulated into the returned result.
func (v *Validator) Validate(doc any, schema *Schema) *ValidationResult {
	run := &validation{
		maxDepth: v.MaxDepth,
		errors:   make([]ValidationError, 0, defaultErrorCapacity),
	}
	if run.maxDepth <= 0 {
		run.maxDepth = maxSchemaNestingDepth
	}

	run.validate(doc, schema, "", 0)

	return &ValidationResult{
		Valid:        len(run.errors) == 0,
		Errors:       run.errors,
		Warnings:     run.warnings,
		ErrorCount:   len(run.errors),
		WarningCount: len(run.warnings),
	}
}

type validation struct {
	maxDepth int
	errors   []ValidationError
	warnings []ValidationError
}

func (r *validation) addError(path, field, message string, value, expected any) {
	r.errors = append(r.errors, ValidationError{
		Path:     path,
		Field:    field,
		Message:  message,
		Severity: SeverityError,
		Value:    value,
		Expected: expected,
	})
}

func (r *validation) addWarning(path, field, message string, value any) {
	r.warnings = append(r.warnings, ValidationError{
		Path:     path,
		Field:    field,
		Message:  message,
		Severity: SeverityWarning,
		Value:    value,
	})
}

func (r *validation) validate(doc any, schema *Schema, path string, depth int) {
	if schema == nil {
		return
	}
	if depth > r.maxDepth {
		r.addError(path, "", fmt.Sprintf("nesting depth exceeds limit of %d", r.maxDepth), nil, r.maxDepth)
		return
	}

	// Type check first; on mismatch, report once and stop descending.
	if schema.Type != "" && !typeMatches(schema.Type, doc) {
		r.addError(path, "type",
			fmt.Sprintf("expected %s, got %s", schema.Type, jsonutil.KindOf(doc)),
			doc, schema.Type)
		return
	}

	switch value := doc.(type) {
	case map[string]any:
		r.validateObject(value, schema, path, depth)
	case []any:
		r.validateArray(value, schema, path, depth)
	default:
		r.validatePrimitive(doc, schema, path)
	}
}

func typeMatches(schemaType string, doc any) bool {
	kind := jsonutil.KindOf(doc)
	switch schemaType {
	case "object":
		return kind == jsonutil.KindObject
	case "array":
		return kind == jsonutil.KindArray
	case "string":
		return kind == jsonutil.KindString
	case "number":
		return kind == jsonutil.KindNumber
	case "integer":
		n, ok := jsonutil.Number(doc)
		return ok && n == math.Trunc(n)
	case "boolean":
		return kind == jsonutil.KindBool
	case "null":
		return kind == jsonutil.KindNull
	default:
		// An unknown type constrains nothing.
		return true
	}
}

func (r *validation) validateObject(obj map[string]any, schema *Schema, path string, depth int) {
	for _, name := range schema.Required {
		if _, ok := obj[name]; !ok {
			r.addError(jsonpath.JoinKey(path, name), "required",
				fmt.Sprintf("missing required property %q", name), nil, name)
		}
	}

	for _, name := range jsonutil.SortedKeys(obj) {
		sub, declared := schema.Properties[name]
		childPath := jsonpath.JoinKey(path, name)
		if declared {
			r.validate(obj[name], sub, childPath, depth+1)
			continue
		}
		if schema.AdditionalProperties != nil && !*schema.AdditionalProperties {
			r.addError(childPath, "additionalProperties",
				fmt.Sprintf("property %q is not declared", name), obj[name], nil)
		}
	}

	if schema.MinProperties != nil && len(obj) < *schema.MinProperties {
		r.addError(path, "minProperties",
			fmt.Sprintf("object has %d properties, needs at least %d", len(obj), *schema.MinProperties),
			len(obj), *schema.MinProperties)
	}
	if schema.MaxProperties != nil && len(obj) > *schema.MaxProperties {
		r.addError(path, "maxProperties",
			fmt.Sprintf("object has %d properties, allows at most %d", len(obj), *schema.MaxProperties),
			len(obj), *schema.MaxProperties)
	}
}

func (r *validation) validateArray(arr []any, schema *Schema, path string, depth int) {
	if schema.MinItems != nil && len(arr) < *schema.MinItems {
		r.addError(path, "minItems",
			fmt.Sprintf("array has %d items, needs at least %d", len(arr), *schema.MinItems),
			len(arr), *schema.MinItems)
	}
	if schema.MaxItems != nil && len(arr) > *schema.MaxItems {
		r.addError(path, "maxItems",
			fmt.Sprintf("array has %d items, allows at most %d", len(arr), *schema.MaxItems),
			len(arr), *schema.MaxItems)
	}

	if schema.UniqueItems {
		seen := jsonutil.NewSet()
		for i, elem := range arr {
			if !seen.Add(elem) {
				r.addError(jsonpath.JoinIndex(path, i), "uniqueItems",
					"duplicate array element", elem, nil)
			}
		}
	}

	if schema.Items != nil {
		for i, elem := range arr {
			r.validate(elem, schema.Items, jsonpath.JoinIndex(path, i), depth+1)
		}
	}
}

func (r *validation) validatePrimitive(doc any, schema *Schema, path string) {
	if len(schema.Enum) > 0 && !jsonutil.ContainsValue(schema.Enum, doc) {
		r.addError(path, "enum", "value is not one of the allowed values", doc, schema.Enum)
	}
	if schema.HasConst && !jsonutil.DeepEqual(doc, schema.ConstValue) {
		r.addError(path, "const", "value does not equal the required constant", doc, schema.ConstValue)
	}

	if s, ok := doc.(string); ok {
		r.validateString(s, schema, path)
	}
	if n, ok := jsonutil.Number(doc); ok {
		r.validateNumber(n, schema, path)
	}
}

func (r *validation) validateString(s string, schema *Schema, path string) {
	length := len([]rune(s))
	if schema.MinLength != nil && length < *schema.MinLength {
		r.addError(path, "minLength",
			fmt.Sprintf("string has length %d, needs at least %d", length, *schema.MinLength),
			s, *schema.MinLength)
	}
	if schema.MaxLength != nil && length > *schema.MaxLength {
		r.addError(path, "maxLength",
			fmt.Sprintf("string has length %d, allows at most %d", length, *schema.MaxLength),
			s, *schema.MaxLength)
	}

	if schema.Pattern != "" {
		re, err := regexp.Compile(schema.Pattern)
		if err != nil {
			// A malformed pattern produces no check, only a notice.
			r.addWarning(path, "pattern", fmt.Sprintf("invalid pattern %q: %v", schema.Pattern, err), s)
		} else if !re.MatchString(s) {
			r.addError(path, "pattern",
				fmt.Sprintf("string does not match pattern %q", schema.Pattern), s, schema.Pattern)
		}
	}

	if schema.Format != "" {
		r.validateFormat(s, schema.Format, path)
	}
}

func (r *validation) validateFormat(s, format, path string) {
	var valid bool
	switch format {
	case "email":
		valid = stringutil.IsValidEmail(s)
	case "url":
		valid = stringutil.IsValidURL(s)
	case "date":
		valid = stringutil.IsValidDate(s)
	case "date-time":
		valid = stringutil.IsValidDateTime(s)
	case "uuid":
		valid = stringutil.IsValidUUID(s)
	default:
		r.addWarning(path, "format", fmt.Sprintf("unknown format %q", format), s)
		return
	}
	if !valid {
		r.addError(path, "format",
			fmt.Sprintf("string is not a valid %s", format), s, format)
	}
}

func (r *validation) validateNumber(n float64, schema *Schema, path string) {
	if schema.Minimum != nil && n < *schema.Minimum {
		r.addError(path, "minimum",
			fmt.Sprintf("%v is less than minimum %v", n, *schema.Minimum), n, *schema.Minimum)
	}
	if schema.Maximum != nil && n > *schema.Maximum {
		r.addError(path, "maximum",
			fmt.Sprintf("%v is greater than maximum %v", n, *schema.Maximum), n, *schema.Maximum)
	}
	if schema.ExclusiveMinimum != nil && n <= *schema.ExclusiveMinimum {
		r.addError(path, "exclusiveMinimum",
			fmt.Sprintf("%v is not greater than %v", n, *schema.ExclusiveMinimum), n, *schema.ExclusiveMinimum)
	}
	if schema.ExclusiveMaximum != nil && n >= *schema.ExclusiveMaximum {
		r.addError(path, "exclusiveMaximum",
			fmt.Sprintf("%v is not less than %v", n, *schema.ExclusiveMaximum), n, *schema.ExclusiveMaximum)
	}
	if schema.MultipleOf != nil && *schema.MultipleOf != 0 {
		quotient := n / *schema.MultipleOf
		if math.Abs(quotient-math.Round(quotient)) > 1e-9 {
			r.addError(path, "multipleOf",
				fmt.Sprintf("%v is not a multiple of %v", n, *schema.MultipleOf), n, *schema.MultipleOf)
		}
	}
}
