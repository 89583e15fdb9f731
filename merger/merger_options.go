package merger

import (
	"github.com/fauriatjules-max/jsontools/jsonerrors"
	"github.com/fauriatjules-max/jsontools/jsonpath"
)

// Option is a function that configures a merge operation.
type Option func(*mergeConfig) error

// mergeConfig holds configuration for a merge operation.
// Nil pointers mean use the default from DefaultConfig.
type mergeConfig struct {
	strategy         *Strategy
	arrayStrategy    *ArrayStrategy
	conflictStrategy *ConflictStrategy
	customMerge      ResolverFunc
	resolver         ResolverFunc
	maxDepth         *int
	logger           jsonpath.Logger
}

// newFromOptions builds a Merger from option functions, validating each.
func newFromOptions(opts ...Option) (*Merger, error) {
	cfg := &mergeConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	defaults := DefaultConfig()
	config := Config{
		Strategy:         strategyOrDefault(cfg.strategy, defaults.Strategy),
		ArrayStrategy:    arrayStrategyOrDefault(cfg.arrayStrategy, defaults.ArrayStrategy),
		ConflictStrategy: conflictStrategyOrDefault(cfg.conflictStrategy, defaults.ConflictStrategy),
		CustomMerge:      cfg.customMerge,
		Resolver:         cfg.resolver,
		MaxDepth:         intOrDefault(cfg.maxDepth, defaults.MaxDepth),
		Logger:           cfg.logger,
	}
	return New(config), nil
}

func strategyOrDefault(ptr *Strategy, defaultVal Strategy) Strategy {
	if ptr == nil {
		return defaultVal
	}
	return *ptr
}

func arrayStrategyOrDefault(ptr *ArrayStrategy, defaultVal ArrayStrategy) ArrayStrategy {
	if ptr == nil {
		return defaultVal
	}
	return *ptr
}

func conflictStrategyOrDefault(ptr *ConflictStrategy, defaultVal ConflictStrategy) ConflictStrategy {
	if ptr == nil {
		return defaultVal
	}
	return *ptr
}

func intOrDefault(ptr *int, defaultVal int) int {
	if ptr == nil {
		return defaultVal
	}
	return *ptr
}

// WithConfig applies an entire Config struct. This is useful for reusing an
// existing configuration across calls.
func WithConfig(config Config) Option {
	return func(cfg *mergeConfig) error {
		cfg.strategy = &config.Strategy
		cfg.arrayStrategy = &config.ArrayStrategy
		cfg.conflictStrategy = &config.ConflictStrategy
		cfg.customMerge = config.CustomMerge
		cfg.resolver = config.Resolver
		if config.MaxDepth > 0 {
			cfg.maxDepth = &config.MaxDepth
		}
		cfg.logger = config.Logger
		return nil
	}
}

// WithStrategy sets how nested objects combine.
// Default: StrategyDeep
func WithStrategy(strategy Strategy) Option {
	return func(cfg *mergeConfig) error {
		switch strategy {
		case StrategyDeep, StrategyShallow:
			cfg.strategy = &strategy
			return nil
		default:
			return &jsonerrors.ConfigError{
				Option:  "strategy",
				Value:   string(strategy),
				Message: "must be deep or shallow",
			}
		}
	}
}

// WithArrayStrategy sets how arrays at the same path combine.
// Default: ArrayConcat
func WithArrayStrategy(strategy ArrayStrategy) Option {
	return func(cfg *mergeConfig) error {
		switch strategy {
		case ArrayConcat, ArrayUnion, ArrayIntersection, ArrayReplace, ArrayDeep:
			cfg.arrayStrategy = &strategy
			return nil
		default:
			return &jsonerrors.ConfigError{
				Option:  "arrayStrategy",
				Value:   string(strategy),
				Message: "must be concat, union, intersection, replace, or deep",
			}
		}
	}
}

// WithConflictStrategy sets which side wins incompatible values.
// Default: ConflictSource
func WithConflictStrategy(strategy ConflictStrategy) Option {
	return func(cfg *mergeConfig) error {
		switch strategy {
		case ConflictSource, ConflictTarget, ConflictThrow, ConflictPriority:
			cfg.conflictStrategy = &strategy
			return nil
		default:
			return &jsonerrors.ConfigError{
				Option:  "conflictStrategy",
				Value:   string(strategy),
				Message: "must be source, target, throw, or priority",
			}
		}
	}
}

// WithCustomMerge registers a hook consulted at every node before default
// handling. Returning ok=true short-circuits that subtree with the returned
// value.
func WithCustomMerge(hook ResolverFunc) Option {
	return func(cfg *mergeConfig) error {
		if hook == nil {
			return &jsonerrors.ConfigError{
				Option:  "customMerge",
				Message: "hook cannot be nil",
			}
		}
		cfg.customMerge = hook
		return nil
	}
}

// WithResolver registers a custom conflict resolver consulted before the
// configured conflict strategy.
func WithResolver(resolver ResolverFunc) Option {
	return func(cfg *mergeConfig) error {
		if resolver == nil {
			return &jsonerrors.ConfigError{
				Option:  "resolver",
				Message: "resolver cannot be nil",
			}
		}
		cfg.resolver = resolver
		return nil
	}
}

// WithLogger supplies a logger that receives debug output during the
// merge, such as each conflict and how it was resolved.
// Default: no logging
func WithLogger(logger jsonpath.Logger) Option {
	return func(cfg *mergeConfig) error {
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

// WithMaxDepth bounds recursion into nested structures.
// Default: DefaultMaxDepth
func WithMaxDepth(depth int) Option {
	return func(cfg *mergeConfig) error {
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
