// Package generator expands JSON templates against a data context.
//
// A template is an ordinary JSON value. Strings containing {{path}}
// placeholders are resolved by looking up the path in the data context; a
// string that is exactly one placeholder yields the raw typed value, while
// partial placeholders interpolate into the surrounding text. Objects
// carrying a "$type" key are directives, dispatched over a closed set:
// ref, array, object, switch, transform, concat, math, date, random, and
// literal. Anything else recurses member-wise.
//
//	result, err := generator.Generate(map[string]any{
//	    "greeting": "Hello, {{user.name}}!",
//	    "id": map[string]any{
//	        "$type":      "random",
//	        "$valueType": "string",
//	        "$length":    8.0,
//	    },
//	}, data)
//
// Error behavior is configurable through WithOnError: throw propagates a
// jsonerrors.GeneratorError carrying the template node and path, default
// substitutes the configured default value, and ignore keeps the original
// template node verbatim. WithStrict makes unresolved references an error
// even when a directive has no explicit fallback.
//
// Randomness is caller-owned: pass a *rand.Rand through WithRand for
// reproducible output. There is no process-wide seed.
//
// With WithValidation, the generated value is run through the validator
// package afterward; under WithStrict an invalid result is an error.
package generator
