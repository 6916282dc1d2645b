package eventlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent_ValidInput_Lowercases(t *testing.T) {
	e, err := NewEvent("Backend", "WARN", "Service", "Shortcode collision attempt: abcd")

	require.NoError(t, err)
	assert.Equal(t, Event{
		Stack:   StackBackend,
		Level:   LevelWarn,
		Package: PackageService,
		Message: "Shortcode collision attempt: abcd",
	}, e)
}

func TestNewEvent_InvalidInput_ReturnsErrInvalidLogEvent(t *testing.T) {
	tests := []struct {
		name    string
		stack   string
		level   string
		pkg     string
		message string
	}{
		{name: "unknown stack", stack: "mobile", level: "info", pkg: "service", message: "m"},
		{name: "empty stack", stack: "", level: "info", pkg: "service", message: "m"},
		{name: "unknown level", stack: "backend", level: "trace", pkg: "service", message: "m"},
		{name: "unknown package", stack: "backend", level: "info", pkg: "kernel", message: "m"},
		{name: "frontend-only package", stack: "backend", level: "info", pkg: "component", message: "m"},
		{name: "empty message", stack: "backend", level: "info", pkg: "service", message: ""},
		{name: "blank message", stack: "backend", level: "info", pkg: "service", message: "  \t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEvent(tt.stack, tt.level, tt.pkg, tt.message)

			assert.ErrorIs(t, err, ErrInvalidLogEvent)
		})
	}
}

func TestNewEvent_EveryWhitelistedPackage_IsAccepted(t *testing.T) {
	for _, pkg := range BackendPackages {
		_, err := NewEvent(StackBackend, LevelInfo, pkg, "ok")
		assert.NoError(t, err, pkg)
	}
}
