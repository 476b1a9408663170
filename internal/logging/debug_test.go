package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := debugOut
	debugOut = &buf
	t.Cleanup(func() { debugOut = prev })
	return &buf
}

func TestDebugEnabled(t *testing.T) {
	t.Setenv(DebugEnv, "")
	assert.False(t, DebugEnabled(), "empty TM_DEBUG should disable debug")

	t.Setenv(DebugEnv, "1")
	assert.True(t, DebugEnabled())

	t.Setenv(DebugEnv, "true")
	assert.True(t, DebugEnabled())
}

func TestDebugf(t *testing.T) {
	buf := captureDebug(t)

	t.Setenv(DebugEnv, "")
	Debugf("hidden %s", "message")
	assert.Empty(t, buf.String())

	t.Setenv(DebugEnv, "1")
	Debugf("visible %s", "message")
	assert.Equal(t, "visible message", buf.String())
}

func TestDebugln(t *testing.T) {
	buf := captureDebug(t)

	t.Setenv(DebugEnv, "")
	Debugln("hidden")
	assert.Empty(t, buf.String())

	t.Setenv(DebugEnv, "1")
	Debugln("visible", 42)
	assert.Equal(t, "visible 42\n", buf.String())
}
