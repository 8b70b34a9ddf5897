package gui

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSetVerboseSwitchesSharedLevel(t *testing.T) {
	defer SetVerbose(false)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LogLevel()}))

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at default level: %q", buf.String())
	}

	SetVerbose(true)
	if !guiVerbose() || !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("SetVerbose(true) should enable debug on handlers sharing LogLevel")
	}
	logger.Debug("shown")
	if !strings.Contains(buf.String(), "msg=shown") {
		t.Errorf("debug record missing: %q", buf.String())
	}

	SetVerbose(false)
	if LogLevel().Level() != slog.LevelInfo {
		t.Errorf("level = %v, want INFO", LogLevel().Level())
	}
}
