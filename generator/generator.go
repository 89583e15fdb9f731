package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
	"github.com/fauriatjules-max/jsontools/jsonerrors"
	"github.com/fauriatjules-max/jsontools/jsonpath"
	"github.com/fauriatjules-max/jsontools/validator"
)

// DefaultMaxDepth bounds recursion into nested templates.
const DefaultMaxDepth = 100

// OnError selects how a directive processing failure is handled.
type OnError string

const (
	// OnErrorThrow propagates a GeneratorError.
	OnErrorThrow OnError = "throw"
	// OnErrorDefault substitutes the configured default value.
	OnErrorDefault OnError = "default"
	// OnErrorIgnore keeps the original template node unprocessed.
	OnErrorIgnore OnError = "ignore"
)

// Option is a function that configures a Generate call.
type Option func(*genConfig) error

type genConfig struct {
	strict       bool
	defaultValue any
	onError      OnError
	schema       *validator.Schema
	rnd          *rand.Rand
	maxDepth     int
	logger       jsonpath.Logger
}

// WithStrict makes unresolved references and invalid post-validation
// results errors instead of best-effort fallbacks.
// Default: false
func WithStrict(strict bool) Option {
	return func(cfg *genConfig) error {
		cfg.strict = strict
		return nil
	}
}

// WithDefaultValue sets the global fallback used for unresolved references
// and by OnErrorDefault.
func WithDefaultValue(v any) Option {
	return func(cfg *genConfig) error {
		cfg.defaultValue = v
		return nil
	}
}

// WithOnError selects the failure policy for directive processing.
// Default: OnErrorThrow
func WithOnError(policy OnError) Option {
	return func(cfg *genConfig) error {
		switch policy {
		case OnErrorThrow, OnErrorDefault, OnErrorIgnore:
			cfg.onError = policy
			return nil
		default:
			return &jsonerrors.ConfigError{
				Option:  "onError",
				Value:   string(policy),
				Message: "must be throw, default, or ignore",
			}
		}
	}
}

// WithValidation validates the generated value against schema afterward.
// Under WithStrict an invalid result is an error; otherwise validation
// problems are silently tolerated.
func WithValidation(schema *validator.Schema) Option {
	return func(cfg *genConfig) error {
		cfg.schema = schema
		return nil
	}
}

// WithRand supplies the random source for the random directive, making
// generation reproducible. Default is a time-seeded source.
func WithRand(rnd *rand.Rand) Option {
	return func(cfg *genConfig) error {
		if rnd == nil {
			return &jsonerrors.ConfigError{
				Option:  "rand",
				Message: "random source cannot be nil",
			}
		}
		cfg.rnd = rnd
		return nil
	}
}

// WithLogger supplies a logger that receives debug output during
// generation, such as directive failures absorbed by the error policy.
// Default: no logging
func WithLogger(logger jsonpath.Logger) Option {
	return func(cfg *genConfig) error {
		if logger == nil {
			return &jsonerrors.ConfigError{
				Option:  "logger",
				Message: "logger cannot be nil",
			}
		}
		cfg.logger = logger
		return nil
	}
}

// WithMaxDepth bounds recursion into nested templates.
// Default: DefaultMaxDepth
func WithMaxDepth(depth int) Option {
	return func(cfg *genConfig) error {
		if depth <= 0 {
			return &jsonerrors.ConfigError{
				Option:  "maxDepth",
				Value:   depth,
				Message: "must be positive",
			}
		}
		cfg.maxDepth = depth
		return nil
	}
}

// Generate expands template against the data context and returns the
// resulting value. Neither input is mutated.
func Generate(template, data any, opts ...Option) (any, error) {
	cfg := &genConfig{
		onError:  OnErrorThrow,
		maxDepth: DefaultMaxDepth,
		logger:   jsonpath.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.rnd == nil {
		cfg.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &generator{cfg: cfg}
	result, err := g.process(template, data, "", 0)
	if err != nil {
		return nil, err
	}

	if cfg.schema != nil {
		vr := validator.Validate(result, cfg.schema)
		if !vr.Valid && cfg.strict {
			return nil, &jsonerrors.GeneratorError{
				Message: fmt.Sprintf("generated value failed validation with %d error(s): %s",
					vr.ErrorCount, vr.Errors[0].String()),
			}
		}
	}
	return result, nil
}

type generator struct {
	cfg *genConfig
}

func (g *generator) process(node, data any, path string, depth int) (any, error) {
	if depth > g.cfg.maxDepth {
		return nil, &jsonerrors.ResourceLimitError{
			ResourceType: "template depth",
			Limit:        int64(g.cfg.maxDepth),
			Actual:       int64(depth),
			Path:         path,
		}
	}

	switch n := node.(type) {
	case string:
		resolved, err := g.interpolate(n, data, path)
		if err != nil {
			return g.handleError(err, node, path)
		}
		return resolved, nil

	case map[string]any:
		if _, isDirective := n["$type"]; isDirective {
			result, err := g.directive(n, data, path, depth)
			if err != nil {
				return g.handleError(err, node, path)
			}
			return result, nil
		}
		result := make(map[string]any, len(n))
		for _, k := range jsonutil.SortedKeys(n) {
			child, err := g.process(n[k], data, jsonpath.JoinKey(path, k), depth+1)
			if err != nil {
				return nil, err
			}
			result[k] = child
		}
		return result, nil

	case []any:
		result := make([]any, len(n))
		for i, elem := range n {
			child, err := g.process(elem, data, jsonpath.JoinIndex(path, i), depth+1)
			if err != nil {
				return nil, err
			}
			result[i] = child
		}
		return result, nil

	default:
		return node, nil
	}
}

// handleError applies the configured failure policy to a processing error.
// Resource limit errors always propagate.
func (g *generator) handleError(err error, original any, path string) (any, error) {
	var limitErr *jsonerrors.ResourceLimitError
	if errors.As(err, &limitErr) {
		return nil, err
	}

	switch g.cfg.onError {
	case OnErrorDefault:
		g.cfg.logger.Debug("substituting default for failed template node",
			"path", path, "cause", err.Error())
		return jsonutil.Clone(g.cfg.defaultValue), nil
	case OnErrorIgnore:
		g.cfg.logger.Debug("keeping template node after failure",
			"path", path, "cause", err.Error())
		return jsonutil.Clone(original), nil
	default:
		var genErr *jsonerrors.GeneratorError
		if errors.As(err, &genErr) {
			return nil, err
		}
		return nil, &jsonerrors.GeneratorError{
			Path:     path,
			Template: original,
			Message:  "template processing failed",
			Cause:    err,
		}
	}
}

var placeholderRegex = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// interpolate resolves {{path}} placeholders in s against data. A string
// that is exactly one placeholder yields the raw typed value.
func (g *generator) interpolate(s string, data any, path string) (any, error) {
	matches := placeholderRegex.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, nil
	}

	// Whole-string single placeholder: return the raw value.
	if len(matches) == 1 && matches[0][0] == 0 && matches[0][1] == len(s) {
		expr := strings.TrimSpace(s[matches[0][2]:matches[0][3]])
		if !jsonpath.Has(data, expr) {
			if g.cfg.strict {
				return nil, &jsonerrors.GeneratorError{
					Path:     path,
					Template: s,
					Message:  fmt.Sprintf("reference %q not found in data", expr),
				}
			}
			return jsonutil.Clone(g.cfg.defaultValue), nil
		}
		return jsonutil.Clone(jsonpath.GetOr(data, expr, nil)), nil
	}

	var result strings.Builder
	last := 0
	for _, m := range matches {
		result.WriteString(s[last:m[0]])
		expr := strings.TrimSpace(s[m[2]:m[3]])
		if !jsonpath.Has(data, expr) {
			if g.cfg.strict {
				return nil, &jsonerrors.GeneratorError{
					Path:     path,
					Template: s,
					Message:  fmt.Sprintf("reference %q not found in data", expr),
				}
			}
		} else {
			result.WriteString(formatValue(jsonpath.GetOr(data, expr, nil)))
		}
		last = m[1]
	}
	result.WriteString(s[last:])
	return result.String(), nil
}

// formatValue renders a value into interpolated text. Containers render as
// compact JSON.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	default:
		if n, ok := jsonutil.Number(v); ok {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}
