package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestVerbosityFiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetVerbosity(int(Info))

	SetVerbosity(int(Info))
	Infof("curve built points=%d", 100)
	Debugf("hidden")

	out := buf.String()
	if !strings.Contains(out, "[INFO]  curve built points=100") {
		t.Fatalf("expected info line, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line logged at info verbosity: %q", out)
	}
	if !strings.Contains(out, "logger_test.go") {
		t.Fatalf("expected caller file in output, got %q", out)
	}
}

func TestSetVerbosityClamps(t *testing.T) {
	defer SetVerbosity(int(Info))

	SetVerbosity(-3)
	if Verbosity() != Error {
		t.Fatalf("expected error level, got %s", Verbosity())
	}
	SetVerbosity(42)
	if Verbosity() != Trace {
		t.Fatalf("expected trace level, got %s", Verbosity())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"error": Error,
		"DEBUG": Debug,
		"trace": Trace,
		"loud":  Info,
	}
	for in, expected := range tests {
		if actual := ParseLevel(in); actual != expected {
			t.Fatalf("%q: expected %s, got %s", in, expected, actual)
		}
	}
}
