package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(false)

	Debug("hidden %d", 1)
	Warn("hidden")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestVerboseOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(true)
	defer SetVerbose(false)

	Info("indexed %d documents", 42)

	got := buf.String()
	if !strings.Contains(got, "[INFO]") || !strings.Contains(got, "indexed 42 documents") {
		t.Errorf("unexpected output: %q", got)
	}
}
