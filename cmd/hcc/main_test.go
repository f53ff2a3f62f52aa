package main

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/docopt/docopt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseArgs(t *testing.T, args string) (docopt.Opts, error) {
	t.Helper()
	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}
	return p.ParseArgs(usage, strings.Fields(args), "test")
}

func TestConfigFromOpts_Defaults(t *testing.T) {
	opts, err := parseArgs(t, "analyze ./src")
	require.NoError(t, err)

	cfg, dir, noStore, err := configFromOpts(opts)
	require.NoError(t, err)
	assert.Equal(t, "./src", dir)
	assert.False(t, noStore)
	assert.Equal(t, "ws://localhost:8000/rpc", cfg.DB.URL)
	assert.Equal(t, "hcc", cfg.DB.Namespace)
	assert.Equal(t, "root", cfg.DB.Username)
	assert.Equal(t, 10, cfg.Options.Hotspots)
	assert.Greater(t, cfg.Options.Workers, 0)
	assert.False(t, cfg.IncludeTests)
	assert.False(t, cfg.Options.FailFast)
	assert.True(t, cfg.Logger.Enabled(context.Background(), slog.LevelWarn))
	assert.False(t, cfg.Logger.Enabled(context.Background(), slog.LevelInfo))
}

func TestConfigFromOpts_Overrides(t *testing.T) {
	opts, err := parseArgs(t, "analyze repo --db=ws://db:8000/rpc --namespace=ci --workers=3 --top=5 --include-tests --fail-fast --no-store --log-level=debug")
	require.NoError(t, err)

	cfg, dir, noStore, err := configFromOpts(opts)
	require.NoError(t, err)
	assert.Equal(t, "repo", dir)
	assert.True(t, noStore)
	assert.Equal(t, "ws://db:8000/rpc", cfg.DB.URL)
	assert.Equal(t, "ci", cfg.DB.Namespace)
	assert.Equal(t, 3, cfg.Options.Workers)
	assert.Equal(t, 5, cfg.Options.Hotspots)
	assert.True(t, cfg.IncludeTests)
	assert.True(t, cfg.Options.FailFast)
	assert.True(t, cfg.Logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestConfigFromOpts_BadValues(t *testing.T) {
	for _, args := range []string{
		"analyze repo --workers=many",
		"analyze repo --log-level=loud",
	} {
		opts, err := parseArgs(t, args)
		require.NoError(t, err)
		_, _, _, err = configFromOpts(opts)
		assert.Error(t, err, args)
	}
}

func TestUsage_RejectsUnknownCommand(t *testing.T) {
	_, err := parseArgs(t, "frobnicate")
	assert.Error(t, err)
}
