package merger

import (
	"fmt"

	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
	"github.com/fauriatjules-max/jsontools/jsonerrors"
	"github.com/fauriatjules-max/jsontools/jsonpath"
)

// DefaultMaxDepth bounds recursion into nested documents during a merge.
const DefaultMaxDepth = 100

// Strategy selects how nested objects combine.
type Strategy string

const (
	// StrategyDeep merges nested objects recursively.
	StrategyDeep Strategy = "deep"
	// StrategyShallow merges top-level keys only; nested source values
	// replace target values wholesale.
	StrategyShallow Strategy = "shallow"
)

// ArrayStrategy selects how two arrays at the same path combine.
type ArrayStrategy string

const (
	// ArrayConcat appends source elements after target elements.
	ArrayConcat ArrayStrategy = "concat"
	// ArrayUnion concatenates then removes structural duplicates,
	// preserving first-seen order.
	ArrayUnion ArrayStrategy = "union"
	// ArrayIntersection keeps every target element that also appears in
	// the source, in target order. Duplicates in the target survive.
	ArrayIntersection ArrayStrategy = "intersection"
	// ArrayReplace discards the target array in favor of the source.
	ArrayReplace ArrayStrategy = "replace"
	// ArrayDeep merges arrays element-wise by index; extra source
	// elements are appended.
	ArrayDeep ArrayStrategy = "deep"
)

// ConflictStrategy selects the winner when both sides hold incompatible
// values at the same path.
type ConflictStrategy string

const (
	// ConflictSource resolves conflicts in favor of the source value.
	ConflictSource ConflictStrategy = "source"
	// ConflictTarget resolves conflicts in favor of the target value.
	ConflictTarget ConflictStrategy = "target"
	// ConflictThrow aborts the merge with a MergeError naming the path.
	ConflictThrow ConflictStrategy = "throw"
	// ConflictPriority resolves conflicts in favor of the first non-null
	// value in merge order. Null never overwrites a value, so within a
	// two-way merge this keeps the target; its effect shows in
	// MergeWithPriority folds across many documents.
	ConflictPriority ConflictStrategy = "priority"
)

// ResolverFunc is consulted before the configured ConflictStrategy when two
// incompatible values meet. Returning ok=false defers to the strategy. The
// returned value is used as-is, so resolvers returning one of their inputs
// should clone it if they retain the original.
type ResolverFunc func(path string, target, source any) (resolved any, ok bool)

// Config holds configuration for a merge operation.
type Config struct {
	// Strategy controls whether nested objects merge recursively.
	Strategy Strategy
	// ArrayStrategy controls how arrays at the same path combine.
	ArrayStrategy ArrayStrategy
	// ConflictStrategy controls which side wins incompatible values.
	ConflictStrategy ConflictStrategy
	// CustomMerge, when non-nil, is consulted at every node before any
	// default handling; returning ok=true short-circuits the merge of
	// that subtree with the returned value.
	CustomMerge ResolverFunc
	// Resolver, when non-nil, is consulted on conflicts before
	// ConflictStrategy.
	Resolver ResolverFunc
	// MaxDepth bounds recursion into nested structures.
	MaxDepth int
	// Logger receives debug output during the merge. Nil means no logging.
	Logger jsonpath.Logger
}

// DefaultConfig returns the default merge configuration: deep merging,
// array concatenation, source-wins conflicts.
func DefaultConfig() Config {
	return Config{
		Strategy:         StrategyDeep,
		ArrayStrategy:    ArrayConcat,
		ConflictStrategy: ConflictSource,
		MaxDepth:         DefaultMaxDepth,
	}
}

// Merger merges JSON documents according to its Config.
type Merger struct {
	Config Config
}

// New creates a Merger with the provided configuration. Zero-valued fields
// fall back to their defaults.
func New(config Config) *Merger {
	defaults := DefaultConfig()
	if config.Strategy == "" {
		config.Strategy = defaults.Strategy
	}
	if config.ArrayStrategy == "" {
		config.ArrayStrategy = defaults.ArrayStrategy
	}
	if config.ConflictStrategy == "" {
		config.ConflictStrategy = defaults.ConflictStrategy
	}
	if config.MaxDepth <= 0 {
		config.MaxDepth = defaults.MaxDepth
	}
	if config.Logger == nil {
		config.Logger = jsonpath.NopLogger{}
	}
	return &Merger{Config: config}
}

// Merge combines target and source using functional options over the
// default configuration. Neither input is mutated.
func Merge(target, source any, opts ...Option) (any, error) {
	m, err := newFromOptions(opts...)
	if err != nil {
		return nil, err
	}
	return m.Merge(target, source)
}

// MergeAll folds documents left to right into a single result. An empty
// slice yields nil; a single document yields a clone of it.
func MergeAll(documents []any, opts ...Option) (any, error) {
	m, err := newFromOptions(opts...)
	if err != nil {
		return nil, err
	}
	if len(documents) == 0 {
		return nil, nil
	}
	result := jsonutil.Clone(documents[0])
	for _, doc := range documents[1:] {
		result, err = m.Merge(result, doc)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Merge combines target and source without mutating either.
func (m *Merger) Merge(target, source any) (any, error) {
	return m.merge(target, source, "", 0)
}

func (m *Merger) merge(target, source any, path string, depth int) (any, error) {
	if depth > m.Config.MaxDepth {
		return nil, &jsonerrors.ResourceLimitError{
			ResourceType: "merge depth",
			Limit:        int64(m.Config.MaxDepth),
			Actual:       int64(depth),
			Path:         path,
		}
	}

	if m.Config.CustomMerge != nil {
		if resolved, ok := m.Config.CustomMerge(path, jsonutil.Clone(target), jsonutil.Clone(source)); ok {
			return resolved, nil
		}
	}

	// A nil source never erases target data; deletion goes through the
	// path engine instead.
	if source == nil {
		return jsonutil.Clone(target), nil
	}
	if target == nil {
		return jsonutil.Clone(source), nil
	}

	// Shallow merges never recurse past the top level: any differing
	// nested value is treated as a conflict between the two wholes.
	if m.Config.Strategy == StrategyShallow && depth > 0 {
		if jsonutil.DeepEqual(target, source) {
			return jsonutil.Clone(target), nil
		}
		return m.resolveConflict(target, source, path)
	}

	kt, ks := jsonutil.KindOf(target), jsonutil.KindOf(source)
	if kt != ks {
		return m.resolveConflict(target, source, path)
	}

	switch kt {
	case jsonutil.KindObject:
		return m.mergeObjects(target.(map[string]any), source.(map[string]any), path, depth)
	case jsonutil.KindArray:
		return m.mergeArrays(target.([]any), source.([]any), path, depth)
	default:
		if jsonutil.DeepEqual(target, source) {
			return jsonutil.Clone(target), nil
		}
		return m.resolveConflict(target, source, path)
	}
}

func (m *Merger) mergeObjects(target, source map[string]any, path string, depth int) (any, error) {
	result := make(map[string]any, len(target)+len(source))
	for k, v := range target {
		result[k] = jsonutil.Clone(v)
	}

	for _, k := range jsonutil.SortedKeys(source) {
		sv := source[k]
		childPath := jsonpath.JoinKey(path, k)

		tv, exists := result[k]
		if !exists {
			result[k] = jsonutil.Clone(sv)
			continue
		}

		merged, err := m.merge(tv, sv, childPath, depth+1)
		if err != nil {
			return nil, err
		}
		result[k] = merged
	}
	return result, nil
}

func (m *Merger) mergeArrays(target, source []any, path string, depth int) (any, error) {
	switch m.Config.ArrayStrategy {
	case ArrayConcat:
		result := make([]any, 0, len(target)+len(source))
		for _, v := range target {
			result = append(result, jsonutil.Clone(v))
		}
		for _, v := range source {
			result = append(result, jsonutil.Clone(v))
		}
		return result, nil

	case ArrayUnion:
		seen := jsonutil.NewSet()
		result := make([]any, 0, len(target)+len(source))
		for _, v := range target {
			if seen.Add(v) {
				result = append(result, jsonutil.Clone(v))
			}
		}
		for _, v := range source {
			if seen.Add(v) {
				result = append(result, jsonutil.Clone(v))
			}
		}
		return result, nil

	case ArrayIntersection:
		inSource := jsonutil.NewSet()
		for _, v := range source {
			inSource.Add(v)
		}
		result := make([]any, 0, len(target))
		for _, v := range target {
			if inSource.Contains(v) {
				result = append(result, jsonutil.Clone(v))
			}
		}
		return result, nil

	case ArrayReplace:
		return jsonutil.Clone(source), nil

	case ArrayDeep:
		longer := max(len(target), len(source))
		result := make([]any, 0, longer)
		for i := 0; i < longer; i++ {
			childPath := jsonpath.JoinIndex(path, i)
			switch {
			case i >= len(target):
				result = append(result, jsonutil.Clone(source[i]))
			case i >= len(source):
				result = append(result, jsonutil.Clone(target[i]))
			default:
				merged, err := m.merge(target[i], source[i], childPath, depth+1)
				if err != nil {
					return nil, err
				}
				result = append(result, merged)
			}
		}
		return result, nil

	default:
		return nil, &jsonerrors.ConfigError{
			Option:  "ArrayStrategy",
			Value:   string(m.Config.ArrayStrategy),
			Message: "unknown array strategy",
		}
	}
}

func (m *Merger) resolveConflict(target, source any, path string) (any, error) {
	m.Config.Logger.Debug("resolving merge conflict",
		"path", path,
		"strategy", string(m.Config.ConflictStrategy),
		"targetKind", jsonutil.KindOf(target).String(),
		"sourceKind", jsonutil.KindOf(source).String())

	if m.Config.Resolver != nil {
		if resolved, ok := m.Config.Resolver(path, jsonutil.Clone(target), jsonutil.Clone(source)); ok {
			return resolved, nil
		}
	}

	switch m.Config.ConflictStrategy {
	case ConflictSource:
		return jsonutil.Clone(source), nil
	case ConflictTarget, ConflictPriority:
		// Both sides are non-null here, so the earlier value wins.
		return jsonutil.Clone(target), nil
	case ConflictThrow:
		return nil, &jsonerrors.MergeError{
			Path:        path,
			TargetValue: target,
			SourceValue: source,
			Message: fmt.Sprintf("conflicting values (%s vs %s)",
				jsonutil.KindOf(target), jsonutil.KindOf(source)),
		}
	default:
		return nil, &jsonerrors.ConfigError{
			Option:  "ConflictStrategy",
			Value:   string(m.Config.ConflictStrategy),
			Message: "unknown conflict strategy",
		}
	}
}
