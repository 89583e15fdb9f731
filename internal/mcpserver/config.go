package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxDepth bounds recursive traversals in the engines.
	MaxDepth int

	// MaxDocumentBytes bounds the size of inline document content.
	MaxDocumentBytes int

	// Merge tool defaults.
	MergeStrategy         string
	MergeArrayStrategy    string
	MergeConflictStrategy string

	// Validate tool defaults.
	ValidateNoWarnings bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from JSONTOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxDepth:              envInt("JSONTOOLS_MAX_DEPTH", 100),
		MaxDocumentBytes:      envInt("JSONTOOLS_MAX_DOCUMENT_BYTES", 10*1024*1024),
		MergeStrategy:         os.Getenv("JSONTOOLS_MERGE_STRATEGY"),
		MergeArrayStrategy:    os.Getenv("JSONTOOLS_MERGE_ARRAY_STRATEGY"),
		MergeConflictStrategy: os.Getenv("JSONTOOLS_MERGE_CONFLICT_STRATEGY"),
		ValidateNoWarnings:    envBool("JSONTOOLS_VALIDATE_NO_WARNINGS", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
