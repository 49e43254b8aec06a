package main

import (
	"testing"

	"github.com/contactkeval/greek-plotter/internal/logger"
)

func TestResolveVerbosity(t *testing.T) {
	tests := []struct {
		flagLevel string
		cfg       int
		expected  int
	}{
		{"", 2, 2},
		{"trace", 0, int(logger.Trace)},
		{"ERROR", 3, int(logger.Error)},
		{"loud", 3, int(logger.Info)},
	}

	for _, test := range tests {
		if actual := resolveVerbosity(test.flagLevel, test.cfg); actual != test.expected {
			t.Fatalf("-v %q with config %d: expected %d, got %d", test.flagLevel, test.cfg, test.expected, actual)
		}
	}
}
