package log //nolint:testpackage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerAttrs(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer
	initGlobals(&buf, zerolog.DebugLevel, true, true)

	New("run").With(ListKind("array"), Case("basics", "growth"), Step(3), Operation("addToRear")).
		Error(errors.New("boom"), "step failed")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "run", rec["s"])
	assert.Equal(t, "array", rec["kind"])
	assert.Equal(t, "basics.growth", rec["case"])
	assert.InDelta(t, 3, rec["step"], 0)
	assert.Equal(t, "addToRear", rec["op"])
	assert.Equal(t, "boom", rec["error"])
	assert.Equal(t, "step failed", rec["message"])
	assert.Equal(t, "error", rec["level"])
}

func TestLoggerLevel(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer
	initGlobals(&buf, zerolog.InfoLevel, true, true)

	lg := New("run")
	lg.Debug("hidden")
	assert.Zero(t, buf.Len())

	lg.Infof("shown %d", 1)
	assert.Contains(t, buf.String(), "shown 1")
}

func TestCtx(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer
	initGlobals(&buf, zerolog.DebugLevel, true, true)

	ctx := New("cli").With(Case("suite", "")).WithContext(context.Background())
	Ctx(ctx).Info("hello")

	assert.Contains(t, buf.String(), `"case":"suite"`)
	assert.Contains(t, buf.String(), `"s":"cli"`)
}
