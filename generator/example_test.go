package generator_test

import (
	"fmt"
	"log"

	"github.com/fauriatjules-max/jsontools/generator"
)

// Example demonstrates generating a document from a template with
// placeholder interpolation.
func Example() {
	template := map[string]any{
		"greeting": "hello {{user.name}}",
		"id":       "{{user.id}}",
	}
	data := map[string]any{
		"user": map[string]any{"name": "alice", "id": 42.0},
	}

	result, err := generator.Generate(template, data)
	if err != nil {
		log.Fatalf("failed to generate: %v", err)
	}
	obj := result.(map[string]any)
	fmt.Println(obj["greeting"])
	fmt.Println(obj["id"])
	// Output:
	// hello alice
	// 42
}

// Example_directives demonstrates array and math directives.
func Example_directives() {
	template := map[string]any{
		"items": map[string]any{
			"$type":  "array",
			"$count": 3.0,
			"$items": "row {{$index}}",
		},
		"total": map[string]any{
			"$type":      "math",
			"$operation": "multiply",
			"$operands":  []any{6.0, 7.0},
		},
	}

	result, err := generator.Generate(template, nil)
	if err != nil {
		log.Fatalf("failed to generate: %v", err)
	}
	obj := result.(map[string]any)
	fmt.Println(obj["items"])
	fmt.Println(obj["total"])
	// Output:
	// [row 0 row 1 row 2]
	// 42
}
