package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	assert.False(t, L().Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(NewText(&buf, false))
	L().Debug("hidden")
	L().Info("shape loaded", "kind", "CIRCLE", "points", 40)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=\"shape loaded\"")
	assert.Contains(t, buf.String(), "kind=CIRCLE")
	assert.Contains(t, buf.String(), "points=40")

	buf.Reset()
	SetLogger(NewText(&buf, true))
	L().Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
}
