package hzlog

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuild_ConsoleTags(t *testing.T) {
	var buf bytes.Buffer
	l, err := Build(DefaultConfig(), &buf)
	require.NoError(t, err)

	ctx := context.Background()
	l.Info(ctx, "hello")
	l.Warning(ctx, "Ignoring invalid number: three")
	l.Error(ctx, "boom")

	require.Equal(t, "[INFO] hello\n[WARN] Ignoring invalid number: three\n[ERR ] boom\n", buf.String())
}

func TestBuild_VerboseInfoTag(t *testing.T) {
	var buf bytes.Buffer
	c := DefaultConfig()
	c.Verbose = true

	l, err := Build(c, &buf)
	require.NoError(t, err)

	ctx := context.Background()
	l.Info(ctx, "hello")
	l.Warning(ctx, "careful")

	require.Equal(t, "[INFORMATION] hello\n[WARN] careful\n", buf.String())
}

func TestBuild_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	c := DefaultConfig()
	c.Level = "warn"

	l, err := Build(c, &buf)
	require.NoError(t, err)

	l.Info(context.Background(), "dropped")
	l.Warning(context.Background(), "kept")

	require.Equal(t, "[WARN] kept\n", buf.String())
}

func TestBuild_JSONMode(t *testing.T) {
	var buf bytes.Buffer
	c := DefaultConfig()
	c.Mode = ModeJSON

	l, err := Build(c, &buf)
	require.NoError(t, err)

	l.Warning(context.Background(), "careful")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "careful", entry["msg"])
}

func TestBuild_InvalidConfig(t *testing.T) {
	c := DefaultConfig()
	c.Level = "loud"
	_, err := Build(c, &bytes.Buffer{})
	require.Error(t, err)

	c = DefaultConfig()
	c.Mode = "xml"
	_, err = Build(c, &bytes.Buffer{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown mode xml")
}

func TestNopLogger(t *testing.T) {
	l := NopLogger()
	l.Info(context.Background(), "nothing happens")
	require.NotNil(t, l.Slog())
}
