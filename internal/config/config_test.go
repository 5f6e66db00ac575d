package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"handmade/internal/bound"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
	assert.Equal(t, bound.TranslateThenScale, Default().Collision.Order())
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
log:
  level: debug
screen:
  width: 640
  origin: top_left
  clear_color: [1, 2, 3, 4]
collision:
  transform_order: scale_then_translate
  plane_tolerance: 0.01
client:
  dial_timeout: 250ms
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 640, cfg.Screen.Width)
	assert.Equal(t, 768, cfg.Screen.Height, "untouched fields keep defaults")
	assert.Equal(t, OriginTopLeft, cfg.Screen.Origin)
	assert.Equal(t, [4]uint8{1, 2, 3, 4}, cfg.Screen.ClearColor)
	assert.Equal(t, bound.ScaleThenTranslate, cfg.Collision.Order())
	assert.Equal(t, float32(0.01), cfg.Collision.PlaneTolerance)
	assert.Equal(t, 250*time.Millisecond, cfg.Client.DialTimeout)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("screen:\n  widht: 10\n"))
	assert.Error(t, err)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "chatty"
	cfg.Screen.Width = 0
	cfg.Screen.Origin = "center"
	cfg.Collision.TransformOrder = "sideways"
	cfg.Collision.CellSize = 0
	cfg.Client.Port = 70000

	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(errors.Unwrap(err)), 6)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("screen:\n  title: Test\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test", cfg.Screen.Title)

	require.NoError(t, os.WriteFile(path, []byte("screen: [oops"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
