package demo

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aatomu/fraction"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDefaults(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(&out, DefaultConfig(), zerolog.Nop()))

	for _, want := range []string{
		// labels may carry terminal styling
		"Addition",
		" 1/2 + 3/4 = 5/4\n",
		" 1/2 - 3/4 = -1/4\n",
		" 1/2 * 3/4 = 3/8\n",
		" 1/2 / 3/4 = 2/3\n",
		"Mixed number of 7/3",
		" 2 1/3\n",
		"1/2 == 1/2: true\n",
	} {
		assert.Contains(t, out.String(), want)
	}
}

func TestRunDivisionByZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Right = []int64{0, 5}

	var out, logs bytes.Buffer
	err := Run(&out, cfg, zerolog.New(&logs))
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)
	assert.Contains(t, logs.String(), `"level":"error"`)
	assert.NotContains(t, out.String(), "Division")
}

func TestRunInvalidOperands(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mixed = []int64{1, 0}
	err := Run(&bytes.Buffer{}, cfg, zerolog.Nop())
	require.ErrorIs(t, err, fraction.ErrInvalidDenominator)

	cfg = DefaultConfig()
	cfg.Left = []int64{1, 2, 3}
	require.Error(t, Run(&bytes.Buffer{}, cfg, zerolog.Nop()))
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)

	path := filepath.Join(t.TempDir(), "demo.toml")
	data := "log_level = \"debug\"\nleft = [2, 3]\nmixed = [-7, 3]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, []int64{2, 3}, c.Left)
	assert.Equal(t, []int64{3, 4}, c.Right)
	assert.Equal(t, []int64{-7, 3}, c.Mixed)

	var out bytes.Buffer
	require.NoError(t, Run(&out, c, zerolog.Nop()))
	assert.Contains(t, out.String(), " -3 2/3\n")
	assert.Contains(t, out.String(), "2/3 == 1/2: false\n")
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("left = ["), 0o644))
	_, err = LoadConfig(path)
	require.Error(t, err)
}

func TestEncode(t *testing.T) {
	s, err := Encode(2, 4)
	require.NoError(t, err)
	assert.Equal(t, "920102", s)

	s, err = Encode(1, -2)
	require.NoError(t, err)
	assert.Equal(t, "92ff02", s)

	_, err = Encode(1, 0)
	require.ErrorIs(t, err, fraction.ErrInvalidDenominator)
}
