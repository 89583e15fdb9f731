// Package codec parses and serializes JSON documents.
//
// Parse accepts both JSON and YAML input (YAML is a superset of JSON) and
// normalizes the result into the value model the engine packages operate on:
// nil, bool, float64, string, []any, and map[string]any. Numbers always come
// back as float64 regardless of the source syntax.
//
// Stringify renders a value as JSON text. Values containing reference cycles
// are rendered with a configurable placeholder instead of recursing forever.
package codec
