package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/dtwbasic/dtw"
)

func writeCSV(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func scenarioConfig(t *testing.T, format string) config {
	opts := dtw.DefaultOptions()
	opts.Norm = 2
	opts.Step = 1
	opts.Backtrack = true
	return config{
		xFile:  writeCSV(t, "x.csv", "0\n1\n2\n"),
		yFile:  writeCSV(t, "y.csv", "0\n2\n"),
		opts:   opts,
		format: format,
	}
}

func TestLoadSeries(t *testing.T) {
	s, err := loadSeries(writeCSV(t, "m.csv", "1, 10\n2, 20\n3, 30\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2, s.Dim())
	assert.Equal(t, 30.0, s.At(2, 1))

	_, err = loadSeries(writeCSV(t, "bad.csv", "1\nx\n"))
	assert.Error(t, err)

	_, err = loadSeries(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestRun_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(scenarioConfig(t, "text"), &buf))
	assert.Equal(t, "distance: 1\npath (3): (1,1) (2,1) (3,2)\n", buf.String())
}

func TestRun_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(scenarioConfig(t, "json"), &buf))

	var got output
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, output{Distance: 1, Index1: []int{3, 2, 1}, Index2: []int{2, 1, 1}, Path: 3}, got)
}

func TestRun_Msgpack(t *testing.T) {
	cfg := scenarioConfig(t, "msgpack")
	cfg.opts.Backtrack = false
	cfg.opts.MemoryMode = dtw.TwoRows

	var buf bytes.Buffer
	require.NoError(t, run(cfg, &buf))

	var got output
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 1.0, got.Distance)
	assert.Zero(t, got.Path)
	assert.Empty(t, got.Index1)
}

func TestRun_Errors(t *testing.T) {
	cfg := scenarioConfig(t, "yaml")
	assert.ErrorContains(t, run(cfg, &bytes.Buffer{}), "unknown output format")

	cfg = scenarioConfig(t, "text")
	cfg.opts.Window = 0
	cfg.yFile = writeCSV(t, "long.csv", "0\n1\n2\n3\n")
	assert.ErrorIs(t, run(cfg, &bytes.Buffer{}), dtw.ErrUnreachable)

	cfg = scenarioConfig(t, "text")
	cfg.xFile = writeCSV(t, "wide.csv", "0,1\n")
	assert.ErrorIs(t, run(cfg, &bytes.Buffer{}), dtw.ErrDimensionMismatch)
}
