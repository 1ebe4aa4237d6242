package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/born-ml/mlp/internal/train"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, opts, err := parseFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, train.DefaultConfig(), cfg)
	assert.False(t, opts.quiet)
}

func TestParseFlags_Overrides(t *testing.T) {
	cfg, opts, err := parseFlags([]string{
		"-topology", "2 4 4 2",
		"-seed", "9",
		"-lr", "0.1",
		"-momentum", "0",
		"-q",
	})
	require.NoError(t, err)

	assert.Equal(t, []int{2, 4, 4, 2}, cfg.Topology)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, 0.1, cfg.Optimizer.LR)
	assert.Equal(t, 0.0, cfg.Optimizer.Momentum)
	assert.True(t, opts.quiet)
}

func TestParseFlags_FlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 3\nrepeats: 4\n"), 0o600))

	cfg, _, err := parseFlags([]string{"-config", path, "-repeats", "2"})
	require.NoError(t, err)

	assert.Equal(t, uint64(3), cfg.Seed)
	assert.Equal(t, 2, cfg.Repeats)
}

func TestParseFlags_Invalid(t *testing.T) {
	_, _, err := parseFlags([]string{"-topology", "2 x 2"})
	require.Error(t, err)

	_, _, err = parseFlags([]string{"-topology", "3 2"})
	require.ErrorIs(t, err, train.ErrInvalidConfig)

	_, _, err = parseFlags([]string{"-no-such-flag"})
	require.Error(t, err)
}

func TestRun_Ring(t *testing.T) {
	cfg := train.DefaultConfig()
	cfg.Samples = 300
	cfg.Chunks = 5
	cfg.TestSamples = 20

	var buf bytes.Buffer
	require.NoError(t, run(cfg, options{}, &buf))

	out := buf.String()
	assert.Contains(t, out, "Initialized network:")
	assert.Contains(t, out, "Chunk   5/5")
	assert.Contains(t, out, "Total test error:")
	assert.Contains(t, out, "Network after training:")
}

func TestRun_Quiet(t *testing.T) {
	cfg := train.DefaultConfig()
	cfg.Samples = 200
	cfg.Chunks = 2

	var buf bytes.Buffer
	require.NoError(t, run(cfg, options{quiet: true}, &buf))

	out := buf.String()
	assert.NotContains(t, out, "Chunk")
	assert.NotContains(t, out, "Network after training:")
	assert.Contains(t, out, "Total test error:")
}
