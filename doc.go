// Package jsontools provides a generic JSON manipulation engine: path-addressed
// access, deep comparison, deep merging, schema validation, declarative
// transformation, and template-driven generation over arbitrary in-memory JSON
// values.
//
// # Overview
//
// The library consists of six primary packages:
//
//   - jsonpath: Parse and evaluate path expressions (get/set/delete/create)
//   - comparer: Deep equality, structural diff, similarity scoring, patch generation
//   - merger: Deep merge with configurable array and conflict strategies
//   - transformer: Map/filter/rule pipelines, flatten/unflatten, object reshaping
//   - validator: Schema validation with accumulated, path-qualified errors
//   - generator: Template expansion with directive dispatch and data binding
//
// Supporting packages:
//
//   - walker: Generic JSON tree traversal with visitor callbacks
//   - codec: Parse JSON/YAML bytes into engine values and stringify them back
//   - jsonerrors: Structured error types shared by all engines
//
// # Value Model
//
// All engines operate on the value model produced by standard JSON
// unmarshaling into any: nil, bool, float64 (integer kinds are accepted and
// compared numerically), string, []any, and map[string]any. Engines never
// mutate caller-supplied inputs; operations that modify structure work on deep
// clones and return new values.
//
// # Quick Start
//
// Read a value by path:
//
//	import "github.com/fauriatjules-max/jsontools/jsonpath"
//
//	doc := map[string]any{"a": map[string]any{"b": []any{1.0, 2.0, 3.0}}}
//	v, err := jsonpath.Get(doc, "a.b[-1]")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(v) // 3
//
// Merge two values:
//
//	import "github.com/fauriatjules-max/jsontools/merger"
//
//	merged, err := merger.Merge(target, source,
//	    merger.WithArrayStrategy(merger.ArrayUnion),
//	)
//
// Validate against a schema:
//
//	import "github.com/fauriatjules-max/jsontools/validator"
//
//	result := validator.Validate(doc, schema)
//	if !result.Valid {
//	    for _, e := range result.Errors {
//	        fmt.Printf("%s: %s\n", e.Path, e.Message)
//	    }
//	}
//
// # Error Handling
//
// Packages follow consistent error handling patterns:
//
//   - Addressing and merge failures: typed errors from the jsonerrors package,
//     matchable with errors.Is and errors.As
//   - Validation and comparison: collected in result objects (not returned as
//     errors); validation always completes and returns the full issue list
//   - Generation: the on-error mode selects between propagating a typed error,
//     substituting a default, or leaving the template node unprocessed
//
// # Resource Limits
//
// Every recursive traversal is bounded by a configurable maximum depth
// (default: 100) to prevent stack exhaustion on pathological or accidentally
// cyclic input. Exceeding the bound surfaces a typed error rather than a
// stack overflow. Acyclic input remains a precondition for correct results.
//
// # Command-Line Interface
//
// In addition to the library packages, jsontools provides a command-line
// interface:
//
//	# Read a value by path
//	jsontools get -path 'a.b[0]' document.json
//
//	# Merge two documents
//	jsontools merge -array-strategy union base.json patch.json
//
//	# Validate against a schema
//	jsontools validate -schema schema.json document.json
//
// Install the CLI:
//
//	go install github.com/fauriatjules-max/jsontools/cmd/jsontools@latest
package jsontools
