package main

import (
	"log/slog"
	"os"
	"testing"

	"github.com/poiesic/askdocs/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestAIFlags(t *testing.T) {
	flags := aiFlags()

	find := func(name string) cli.Flag {
		for _, flag := range flags {
			for _, n := range flag.Names() {
				if n == name {
					return flag
				}
			}
		}
		return nil
	}

	t.Run("backend defaults to stub", func(t *testing.T) {
		flag, ok := find("backend").(*cli.StringFlag)
		require.True(t, ok)
		assert.Equal(t, "stub", flag.Value)
		assert.Contains(t, flag.EnvVars, "ASKDOCS_BACKEND")
	})

	t.Run("model-host has local default", func(t *testing.T) {
		flag, ok := find("model-host").(*cli.StringFlag)
		require.True(t, ok)
		assert.Equal(t, "http://localhost:11434/v1", flag.Value)
	})

	t.Run("api-token comes from environment", func(t *testing.T) {
		flag, ok := find("api-token").(*cli.StringFlag)
		require.True(t, ok)
		assert.Empty(t, flag.Value)
		assert.Contains(t, flag.EnvVars, "ASKDOCS_API_TOKEN")
	})

	t.Run("max-tokens default", func(t *testing.T) {
		flag, ok := find("max-tokens").(*cli.IntFlag)
		require.True(t, ok)
		assert.Equal(t, 256, flag.Value)
	})
}

func TestSetupLogger(t *testing.T) {
	defer slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	t.Run("rejects unknown level", func(t *testing.T) {
		app := &cli.App{
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "log-level", Value: "verbose"},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
		err := app.Run([]string{"askdocs"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("accepts known levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
			app := &cli.App{
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "log-level", Value: level},
				},
				Before: setupLogger,
				Action: func(c *cli.Context) error { return nil },
			}
			assert.NoError(t, app.Run([]string{"askdocs"}), "level %s", level)
		}
	})
}

func TestAskCommand_RequiresQuestion(t *testing.T) {
	app := &cli.App{
		Commands: []*cli.Command{
			{Name: "ask", Action: askCommand},
		},
	}
	err := app.Run([]string{"askdocs", "ask"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question is required")
}

func TestAskCommand_RejectsTopKOutOfBounds(t *testing.T) {
	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:   "ask",
				Action: askCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "top-k", Value: 5},
				},
			},
		},
	}

	for _, topK := range []string{"0", "100"} {
		err := app.Run([]string{"askdocs", "ask", "--top-k", topK, "how", "are", "backups", "kept?"})
		require.Error(t, err, "top-k %s", topK)
		assert.ErrorIs(t, err, core.ErrInvalidTopK)
	}
}

func TestSearchCommand_RejectsTopKOutOfBounds(t *testing.T) {
	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:   "search",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "top-k", Value: 5},
				},
			},
		},
	}

	err := app.Run([]string{"askdocs", "search", "--top-k", "-3", "backups"})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidTopK)
}
