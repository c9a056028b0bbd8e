package logger

import (
	"bytes"
	"os"
	"testing"
)

func reset() {
	SetLevel(LevelWarn)
	SetOutput(os.Stderr)
}

func TestSetVerbosity(t *testing.T) {
	defer reset()

	tests := []struct {
		count int
		want  Level
	}{
		{0, LevelWarn},
		{1, LevelInfo},
		{2, LevelDebug},
		{5, LevelDebug},
		{-1, LevelWarn},
	}

	for _, tt := range tests {
		SetVerbosity(tt.count)
		if got := CurrentLevel(); got != tt.want {
			t.Errorf("SetVerbosity(%d): level = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestIsVerbose(t *testing.T) {
	defer reset()

	SetLevel(LevelWarn)
	if IsVerbose() {
		t.Error("expected verbose to be false at warn level")
	}

	SetLevel(LevelInfo)
	if !IsVerbose() {
		t.Error("expected verbose to be true at info level")
	}
}

func TestDebug_WhenDebugLevel(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelDebug)

	Debug("test message %s", "arg")

	if got := buf.String(); got != "[DEBUG] test message arg\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDebug_WhenInfoLevel(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelInfo)

	Debug("test message")

	if buf.Len() > 0 {
		t.Error("expected no debug output at info level")
	}
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelDebug)

	Section("Build Deeplink")

	if got := buf.String(); got != "\n=== Build Deeplink ===\n" {
		t.Errorf("unexpected section output: %q", got)
	}
}

func TestInfo(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelInfo)

	Info("info message %d", 42)

	if got := buf.String(); got != "[INFO] info message 42\n" {
		t.Errorf("unexpected info output: %q", got)
	}
}

func TestWarn_AlwaysPrinted(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelWarn)

	Warn("warning message")
	Info("hidden")

	if got := buf.String(); got != "[WARN] warning message\n" {
		t.Errorf("unexpected warn output: %q", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			SetLevel(LevelDebug)
			Debug("concurrent %d", i)
			IsVerbose()
			SetLevel(LevelWarn)
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
