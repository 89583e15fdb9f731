package transformer

import (
	"fmt"

	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
	"github.com/fauriatjules-max/jsontools/jsonerrors"
	"github.com/fauriatjules-max/jsontools/jsonpath"
)

// DefaultMaxDepth bounds recursion into nested documents during Transform.
const DefaultMaxDepth = 100

// MapFunc rewrites a single node. The path locates the node in path-engine
// syntax; the returned value replaces it.
type MapFunc func(path string, value any) (any, error)

// FilterFunc decides whether a container member is kept.
type FilterFunc func(path string, value any) (bool, error)

// RuleOp identifies a declarative rule operation.
type RuleOp string

const (
	// RuleSet writes Value at Path, creating intermediate containers.
	RuleSet RuleOp = "set"
	// RuleDelete removes the value at Path; missing paths are a no-op.
	RuleDelete RuleOp = "delete"
	// RuleRename moves the value at Path to the sibling key NewKey.
	RuleRename RuleOp = "rename"
	// RuleTransform applies Func to the value at Path and writes it back.
	RuleTransform RuleOp = "transform"
)

// Rule is one declarative mutation, applied in list order after the map and
// filter stages. A rule with both Condition and When set requires both to
// hold.
type Rule struct {
	// Op selects the operation.
	Op RuleOp
	// Path locates the value the rule acts on.
	Path string
	// Value is the value written by RuleSet.
	Value any
	// NewKey is the replacement key for RuleRename.
	NewKey string
	// Func is the callback for RuleTransform.
	Func func(value any) (any, error)
	// Condition, when non-nil, gates the rule on a path comparison.
	Condition *Condition
	// When, when non-nil, gates the rule on an arbitrary predicate over
	// the whole document.
	When func(doc any) bool
}

// Option is a function that configures a Transform call.
type Option func(*transformConfig) error

type transformConfig struct {
	mapFn    MapFunc
	filterFn FilterFunc
	rules    []Rule
	deep     *bool
	inPlace  *bool
	maxDepth *int
}

// WithMapFunc sets the per-node map callback.
func WithMapFunc(fn MapFunc) Option {
	return func(cfg *transformConfig) error {
		cfg.mapFn = fn
		return nil
	}
}

// WithFilterFunc sets the per-member filter callback.
func WithFilterFunc(fn FilterFunc) Option {
	return func(cfg *transformConfig) error {
		cfg.filterFn = fn
		return nil
	}
}

// WithRules appends declarative rules, applied in order after map and filter.
func WithRules(rules ...Rule) Option {
	return func(cfg *transformConfig) error {
		cfg.rules = append(cfg.rules, rules...)
		return nil
	}
}

// WithDeep controls whether map and filter recurse below the first level.
// Default: true
func WithDeep(deep bool) Option {
	return func(cfg *transformConfig) error {
		cfg.deep = &deep
		return nil
	}
}

// WithInPlace reuses the input's containers instead of cloning first. The
// caller must still use the returned value, since filtering can replace
// arrays.
// Default: false
func WithInPlace(inPlace bool) Option {
	return func(cfg *transformConfig) error {
		cfg.inPlace = &inPlace
		return nil
	}
}

// WithMaxDepth bounds recursion into nested structures.
// Default: DefaultMaxDepth
func WithMaxDepth(depth int) Option {
	return func(cfg *transformConfig) error {
		if depth <= 0 {
			return &jsonerrors.ConfigError{
				Option:  "maxDepth",
				Value:   depth,
				Message: "must be positive",
			}
		}
		cfg.maxDepth = &depth
		return nil
	}
}

// Transform applies the configured map, filter, and rule stages to doc, in
// that fixed order, and returns the transformed document. The input is not
// mutated unless WithInPlace is set. Any stage error discards all partial
// work.
func Transform(doc any, opts ...Option) (any, error) {
	cfg := &transformConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	t := &transform{
		mapFn:    cfg.mapFn,
		filterFn: cfg.filterFn,
		deep:     true,
		maxDepth: DefaultMaxDepth,
	}
	if cfg.deep != nil {
		t.deep = *cfg.deep
	}
	if cfg.inPlace != nil {
		t.inPlace = *cfg.inPlace
	}
	if cfg.maxDepth != nil {
		t.maxDepth = *cfg.maxDepth
	}

	if !t.inPlace {
		doc = jsonutil.Clone(doc)
	}

	result, err := t.node(doc, "", 0)
	if err != nil {
		return nil, err
	}

	return applyRules(result, cfg.rules)
}

type transform struct {
	mapFn    MapFunc
	filterFn FilterFunc
	deep     bool
	inPlace  bool
	maxDepth int
}

func (t *transform) node(v any, path string, depth int) (any, error) {
	if depth > t.maxDepth {
		return nil, &jsonerrors.ResourceLimitError{
			ResourceType: "transform depth",
			Limit:        int64(t.maxDepth),
			Actual:       int64(depth),
			Path:         path,
		}
	}

	if t.mapFn != nil {
		mapped, err := t.mapFn(path, v)
		if err != nil {
			return nil, &jsonerrors.TransformError{
				Path:    path,
				Index:   -1,
				Message: "map callback failed",
				Cause:   err,
			}
		}
		v = mapped
	}

	// With deep disabled, only the root and its immediate members are
	// processed.
	if depth > 0 && !t.deep {
		return v, nil
	}

	switch val := v.(type) {
	case map[string]any:
		result := val
		if !t.inPlace {
			result = make(map[string]any, len(val))
		}
		for _, k := range jsonutil.SortedKeys(val) {
			childPath := jsonpath.JoinKey(path, k)
			child, err := t.node(val[k], childPath, depth+1)
			if err != nil {
				return nil, err
			}
			keep, err := t.keep(childPath, child)
			if err != nil {
				return nil, err
			}
			if !keep {
				delete(result, k)
				continue
			}
			result[k] = child
		}
		return result, nil

	case []any:
		result := make([]any, 0, len(val))
		for i, elem := range val {
			childPath := jsonpath.JoinIndex(path, i)
			child, err := t.node(elem, childPath, depth+1)
			if err != nil {
				return nil, err
			}
			keep, err := t.keep(childPath, child)
			if err != nil {
				return nil, err
			}
			if keep {
				result = append(result, child)
			}
		}
		return result, nil

	default:
		return v, nil
	}
}

func (t *transform) keep(path string, v any) (bool, error) {
	if t.filterFn == nil {
		return true, nil
	}
	keep, err := t.filterFn(path, v)
	if err != nil {
		return false, &jsonerrors.TransformError{
			Path:    path,
			Index:   -1,
			Message: "filter callback failed",
			Cause:   err,
		}
	}
	return keep, nil
}

func applyRules(doc any, rules []Rule) (any, error) {
	for i, rule := range rules {
		applies, err := ruleApplies(doc, rule)
		if err != nil {
			return nil, &jsonerrors.TransformError{
				Path:    rule.Path,
				Index:   i,
				Message: "rule condition failed",
				Cause:   err,
			}
		}
		if !applies {
			continue
		}

		doc, err = applyRule(doc, rule)
		if err != nil {
			return nil, &jsonerrors.TransformError{
				Path:    rule.Path,
				Index:   i,
				Message: fmt.Sprintf("%s rule failed", rule.Op),
				Cause:   err,
			}
		}
	}
	return doc, nil
}

func ruleApplies(doc any, rule Rule) (bool, error) {
	if rule.When != nil && !rule.When(doc) {
		return false, nil
	}
	if rule.Condition != nil {
		return rule.Condition.Evaluate(doc)
	}
	return true, nil
}

func applyRule(doc any, rule Rule) (any, error) {
	switch rule.Op {
	case RuleSet:
		return jsonpath.Set(doc, rule.Path, rule.Value)

	case RuleDelete:
		return jsonpath.Delete(doc, rule.Path)

	case RuleRename:
		parent, last, err := jsonpath.SplitLast(rule.Path)
		if err != nil {
			return nil, err
		}
		if _, ok := last.(jsonpath.KeySegment); !ok {
			return nil, &jsonerrors.ConfigError{
				Option:  "rule.path",
				Value:   rule.Path,
				Message: "rename requires a key path, not an index",
			}
		}
		if !jsonpath.Has(doc, rule.Path) {
			return doc, nil
		}
		value, err := jsonpath.Get(doc, rule.Path)
		if err != nil {
			return nil, err
		}
		doc, err = jsonpath.Delete(doc, rule.Path)
		if err != nil {
			return nil, err
		}
		return jsonpath.Set(doc, jsonpath.JoinKey(parent, rule.NewKey), value)

	case RuleTransform:
		if rule.Func == nil {
			return nil, &jsonerrors.ConfigError{
				Option:  "rule.func",
				Message: "transform rule requires a callback",
			}
		}
		if !jsonpath.Has(doc, rule.Path) {
			return doc, nil
		}
		value, err := jsonpath.Get(doc, rule.Path)
		if err != nil {
			return nil, err
		}
		transformed, err := rule.Func(value)
		if err != nil {
			return nil, err
		}
		return jsonpath.Set(doc, rule.Path, transformed)

	default:
		return nil, &jsonerrors.ConfigError{
			Option:  "rule.op",
			Value:   string(rule.Op),
			Message: "unknown rule operation",
		}
	}
}
