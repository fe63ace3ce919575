package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relaypad/chaincost"
	"github.com/katalvlaran/relaypad/score"
)

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.txt")
	require.NoError(t, os.WriteFile(path, []byte("029A\n980A\n179A\n456A\n379A\n"), 0o644))

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config{input: path, shallow: 2, deep: 2, workers: 2}
	require.NoError(t, run(context.Background(), cfg, &out, logger))
	require.Equal(t, "part1: 126384\npart2: 126384\n", out.String())
}

func TestRun_Costs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.txt")
	require.NoError(t, os.WriteFile(path, []byte("029A\n980A\n"), 0o644))

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config{input: path, shallow: 0, deep: 2, workers: 1, costs: true}
	require.NoError(t, run(context.Background(), cfg, &out, logger))
	want := "" +
		"  029A depth=0 presses=12 complexity=348\n" +
		"  980A depth=0 presses=12 complexity=11760\n" +
		"part1: 12108\n" +
		"  029A depth=2 presses=68 complexity=1972\n" +
		"  980A depth=2 presses=60 complexity=58800\n" +
		"part2: 60772\n"
	require.Equal(t, want, out.String())
}

func TestRun_Errors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var out bytes.Buffer

	err := run(context.Background(), config{input: filepath.Join(t.TempDir(), "missing"), workers: 1}, &out, logger)
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("02#A\n"), 0o644))
	err = run(context.Background(), config{input: bad, shallow: 2, deep: 25, workers: 1}, &out, logger)
	require.ErrorContains(t, err, "line 1")

	err = run(context.Background(), config{input: bad, workers: 0}, &out, logger)
	require.ErrorContains(t, err, "-workers")

	deep := filepath.Join(t.TempDir(), "deep.txt")
	require.NoError(t, os.WriteFile(deep, []byte("707A\n"), 0o644))
	err = run(context.Background(), config{input: deep, shallow: 2, deep: chaincost.MaxSupportedDepth, workers: 1}, &out, logger)
	require.ErrorIs(t, err, score.ErrOverflow)
	require.ErrorContains(t, err, "part 2")
}
