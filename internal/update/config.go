package update

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type StorageBackend string

const (
	BackendJSON   StorageBackend = "json"
	BackendSQLite StorageBackend = "sqlite"
)

type RuntimeConfig struct {
	Backend          StorageBackend
	StatePath        string
	LogFilePath      string
	LogLevel         string
	JournalLogging   bool
	StatusTTLSeconds int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Backend:          BackendJSON,
		StatePath:        ".todotui_state.json",
		LogLevel:         "info",
		StatusTTLSeconds: 3,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TODOTUI_BACKEND"); ok {
		cfg.Backend = StorageBackend(strings.ToLower(v))
	}
	if v, ok := getEnvString("TODOTUI_STATE_PATH"); ok {
		cfg.StatePath = v
	}
	if v, ok := getEnvString("TODOTUI_LOG_FILE"); ok {
		cfg.LogFilePath = v
	}
	if v, ok := getEnvString("TODOTUI_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := getEnvBool("TODOTUI_JOURNAL"); ok {
		cfg.JournalLogging = v
	}
	if v, ok := getEnvInt("TODOTUI_STATUS_TTL_SECONDS"); ok && v > 0 {
		cfg.StatusTTLSeconds = v
	}
	return cfg
}

func (c RuntimeConfig) Validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend: %q", c.Backend)
	}
	if strings.TrimSpace(c.StatePath) == "" {
		return fmt.Errorf("state path is empty")
	}
	return nil
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
