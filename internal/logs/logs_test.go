package logs

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todotui.log")
	logger, closeFn, err := New(Options{FilePath: path, Level: slog.LevelInfo})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Info("snapshot saved", "items", 3)
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(raw), "snapshot saved") || !strings.Contains(string(raw), "items=3") {
		t.Fatalf("unexpected log contents: %q", raw)
	}
}

func TestNewLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todotui.log")
	logger, closeFn, err := New(Options{FilePath: path, Level: slog.LevelWarn})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("quiet")
	logger.Warn("loud")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	raw, _ := os.ReadFile(path)
	if strings.Contains(string(raw), "quiet") {
		t.Fatalf("info record should be filtered: %q", raw)
	}
	if !strings.Contains(string(raw), "loud") {
		t.Fatalf("warn record missing: %q", raw)
	}
}

func TestNewWithoutSinksDiscards(t *testing.T) {
	logger, closeFn, err := New(Options{})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	defer func() { _ = closeFn() }()
	// Must not panic or write anywhere.
	logger.Info("dropped")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("snapshot.items-count"); got != "SNAPSHOT_ITEMS_COUNT" {
		t.Fatalf("unexpected journal key: %q", got)
	}
}
