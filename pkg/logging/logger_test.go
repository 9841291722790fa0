package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixWriter(t *testing.T) {
	var buf bytes.Buffer
	pw := NewPrefixWriter("> ", &buf)

	n, err := pw.Write([]byte("first\nsec"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, "> first\n", buf.String())

	_, err = pw.Write([]byte("ond\nthird"))
	require.NoError(t, err)
	assert.Equal(t, "> first\n> second\n", buf.String())

	require.NoError(t, pw.Flush())
	assert.Equal(t, "> first\n> second\n> third\n", buf.String())
	require.NoError(t, pw.Flush())
	assert.Equal(t, "> first\n> second\n> third\n", buf.String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input     string
		wantLevel string
		wantJSON  bool
	}{
		{input: "debug", wantLevel: "debug"},
		{input: "json", wantLevel: "info", wantJSON: true},
		{input: "json:trace", wantLevel: "trace", wantJSON: true},
		{input: "json:", wantLevel: "info", wantJSON: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, jsonFormat := ParseLevel(tt.input)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantJSON, jsonFormat)
		})
	}
}

func TestParseLevelFromEnvironment(t *testing.T) {
	t.Setenv("SPLASHGEN_LOG_LEVEL", "error")
	level, jsonFormat := ParseLevel("")
	assert.Equal(t, "error", level)
	assert.False(t, jsonFormat)

	t.Setenv("SPLASHGEN_LOG_LEVEL", "")
	level, _ = ParseLevel("")
	assert.Equal(t, "warn", level)
}

func TestNewLoggerPrefixesLines(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Name: "splashgen-test", Level: "info", Output: &buf})

	logger.Info("wrote drawable", "path", "res/drawable-mdpi/splash_image.png")
	logger.Debug("hidden")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, Prefix), "got %q", out)
	assert.Contains(t, out, "wrote drawable")
	assert.NotContains(t, out, "hidden")
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Name: "splashgen-test", Level: "json:info", Output: &buf})

	logger.Info("patched", "file", "colors.xml")

	out := buf.String()
	assert.False(t, strings.HasPrefix(out, Prefix))
	assert.Contains(t, out, `"@message":"patched"`)
	assert.Contains(t, out, `"file":"colors.xml"`)
}
