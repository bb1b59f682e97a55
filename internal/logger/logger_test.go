package logger

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_Envs(t *testing.T) {
	for _, env := range []string{"", "local", "dev", "test", "prod"} {
		t.Run("env="+env, func(t *testing.T) {
			l, err := New(Options{Env: env})
			if err != nil {
				t.Fatalf("New(%q): %v", env, err)
			}
			if l == nil {
				t.Fatal("nil logger")
			}
		})
	}
}

func TestNew_UnknownEnv(t *testing.T) {
	if _, err := New(Options{Env: "staging"}); err == nil {
		t.Fatal("expected error for unknown env")
	}
}

func TestNew_LevelOverride(t *testing.T) {
	l, err := New(Options{Env: "prod", Level: "warn"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.Core().Enabled(zap.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !l.Core().Enabled(zap.WarnLevel) {
		t.Error("warn should be enabled")
	}

	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quickhelp.log")
	l, err := New(Options{Env: "local", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("stats refresh failed")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "stats refresh failed") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestFromContext(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext must never return nil")
	}
	l := zap.NewExample()
	ctx := ContextWithLogger(context.Background(), l)
	if FromContext(ctx) != l {
		t.Error("expected stored logger back")
	}
}
