package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// ResultLimit is the maximum number of bytes of JSON returned inline by
	// the get and format tools before the result is truncated.
	ResultLimit int

	// MaxDocumentSize is the maximum size in bytes of a document accepted
	// from a file or inline content.
	MaxDocumentSize int

	// PrettyByDefault formats get results with indentation unless the tool
	// call says otherwise.
	PrettyByDefault bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from JSONTOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		ResultLimit:     envInt("JSONTOOLS_RESULT_LIMIT", 256*1024),
		MaxDocumentSize: envInt("JSONTOOLS_MAX_DOCUMENT_SIZE", 10*1024*1024),
		PrettyByDefault: envBool("JSONTOOLS_PRETTY_BY_DEFAULT", false),
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
