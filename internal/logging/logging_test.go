// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("Expected LevelInfo, got %d", cfg.Level)
	}
	if cfg.Output == nil {
		t.Error("Default output should not be nil")
	}
	if cfg.AddSource {
		t.Error("AddSource should default to false")
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Output: &buf, Level: LevelInfo})

	logger.WithComponent("link-store").Info("file created", "path", "/tmp/x")

	out := buf.String()
	if !strings.Contains(out, "component=link-store") {
		t.Errorf("missing component attribute: %s", out)
	}
	if !strings.Contains(out, "path=/tmp/x") {
		t.Errorf("missing key-value pair: %s", out)
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Output: &buf, Level: LevelInfo})

	logger.WithError(errors.New("boom")).Error("pass failed")

	if !strings.Contains(buf.String(), "error=boom") {
		t.Errorf("missing error attribute: %s", buf.String())
	}
}

func TestWithErrorNil(t *testing.T) {
	logger := New(DefaultConfig())
	if logger.WithError(nil) != logger {
		t.Error("WithError(nil) should return the same logger")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Output: &buf, Level: LevelWarn})

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn record missing: %s", out)
	}
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	var buf bytes.Buffer
	SetDefault(New(Config{Output: &buf, Level: LevelDebug}))

	Debug("through default")
	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("default logger not replaced: %s", buf.String())
	}
}
