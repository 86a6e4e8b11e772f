package config

import (
	"os"
	"path/filepath"
	"testing"

	"Ponk/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProperties(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "properties"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "properties", env+".properties"), []byte(content), 0o644))
	return dir
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(t.TempDir(), "nowhere", nil)
	require.NoError(t, err)

	assert.Equal(t, "nowhere", c.Env)
	assert.Equal(t, ViewTerminal, c.View)
	assert.False(t, c.Sound)
	assert.Equal(t, core.DefaultSettings(), c.Settings())
}

func TestLoadReadsProperties(t *testing.T) {
	dir := writeProperties(t, "test", `
view=window
seed=17
sound=true
parallel_paddles=true
paddle.speed=650
playfield.width=800
playfield.height=600
paddle.clamp_offset=100
`)

	c, err := Load(dir, "test", nil)
	require.NoError(t, err)

	assert.Equal(t, ViewWindow, c.View)
	assert.Equal(t, uint64(17), c.Seed)
	assert.True(t, c.Sound)
	assert.True(t, c.ParallelPaddles)
	assert.Equal(t, 650.0, c.PaddleSpeed)
	assert.Equal(t, core.Playfield{Width: 800, Height: 600}, c.Settings().Field)
	assert.Equal(t, 100.0, c.ClampOffset)
	assert.Equal(t, 400.0, c.BallSpeed, "unset keys keep their default")
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := writeProperties(t, "test", "ball.speed=500\n")
	t.Setenv("PONG_BALL_SPEED", "300")

	c, err := Load(dir, "test", nil)
	require.NoError(t, err)

	assert.Equal(t, 300.0, c.BallSpeed)
}

func TestFlagsOverrideFile(t *testing.T) {
	dir := writeProperties(t, "test", "view=terminal\nseed=1\n")
	fs := Flags()
	require.NoError(t, fs.Parse([]string{"--view=window", "--seed=5"}))

	c, err := Load(dir, "test", fs)
	require.NoError(t, err)

	assert.Equal(t, ViewWindow, c.View)
	assert.Equal(t, uint64(5), c.Seed)
}

func TestUnsetFlagsKeepFileValues(t *testing.T) {
	dir := writeProperties(t, "test", "view=window\nsound=true\n")
	fs := Flags()
	require.NoError(t, fs.Parse(nil))

	c, err := Load(dir, "test", fs)
	require.NoError(t, err)

	assert.Equal(t, ViewWindow, c.View)
	assert.True(t, c.Sound)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	for name, content := range map[string]string{
		"negative height": "paddle.height=-1\n",
		"zero tick rate":  "tick.rate=0\n",
		"unknown view":    "view=gui\n",
		"not a number":    "ball.size=big\n",
		"clamp too large": "paddle.clamp_offset=1000\n",
		"negative margin": "paddle.margin=-5\n",
		"NaN width":       "playfield.width=NaN\n",
		"infinite speed":  "ball.speed=+Inf\n",
		"NaN margin":      "paddle.margin=NaN\n",
		"paddles overlap": "playfield.width=60\npaddle.clamp_offset=20\n",
		"paddle at serve": "playfield.width=110\n",
	} {
		t.Run(name, func(t *testing.T) {
			dir := writeProperties(t, "bad", content)
			_, err := Load(dir, "bad", nil)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadAcceptsNarrowestPlayfield(t *testing.T) {
	dir := writeProperties(t, "narrow", "playfield.width=120\n")

	c, err := Load(dir, "narrow", nil)
	require.NoError(t, err)
	assert.Equal(t, 120.0, c.Width)
}

func TestFlagsDefaults(t *testing.T) {
	t.Setenv("PONG_ENV", "")
	fs := Flags()
	require.NoError(t, fs.Parse(nil))

	env, _ := fs.GetString("env")
	dir, _ := fs.GetString("config-dir")
	assert.Equal(t, DefaultEnv, env)
	assert.Equal(t, ".", dir)
}
