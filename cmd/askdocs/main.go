// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/poiesic/askdocs"
	"github.com/poiesic/askdocs/ai"
	"github.com/poiesic/askdocs/core"
	"github.com/poiesic/askdocs/migrate"
	"github.com/urfave/cli/v2"
)

func main() {
	// Local development keeps model settings in a .env file; absence is fine
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "askdocs",
		Usage: "Grounded question answering over a local document corpus",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory",
				Value:   "./askdocs_db",
				EnvVars: []string{"ASKDOCS_DB"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Answer a question from the stored documents",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of documents to retrieve",
						Value:   5,
					},
				}, aiFlags()...),
			},
			{
				Name:      "search",
				Usage:     "Rank stored documents against a query without generating an answer",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of documents to retrieve",
						Value:   5,
					},
				},
			},
			{
				Name:   "index",
				Usage:  "Rebuild the search index over the stored documents",
				Action: indexCommand,
			},
			{
				Name:   "migrate",
				Usage:  "Rewrite all stored documents under the current record encoding",
				Action: migrateCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of documents to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N documents",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:   "history",
				Usage:  "Show recent question/answer exchanges",
				Action: historyCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Number of exchanges to show",
						Value:   10,
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "Show all exchanges from one day (YYYY-MM-DD, UTC) instead of the most recent",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// aiFlags returns the generation backend flags shared by commands that
// consult the model.
func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "backend",
			Usage:   "Generation backend (stub, openai)",
			Value:   ai.BackendStub,
			EnvVars: []string{"ASKDOCS_BACKEND"},
		},
		&cli.StringFlag{
			Name:    "model-host",
			Usage:   "Generation service host URL",
			Value:   "http://localhost:11434/v1",
			EnvVars: []string{"ASKDOCS_MODEL_HOST"},
		},
		&cli.StringFlag{
			Name:    "model",
			Usage:   "Generation model name",
			Value:   "qwen2.5:3b",
			EnvVars: []string{"ASKDOCS_MODEL"},
		},
		&cli.StringFlag{
			Name:    "api-token",
			Usage:   "API token for the generation service",
			EnvVars: []string{"ASKDOCS_API_TOKEN"},
		},
		&cli.IntFlag{
			Name:  "max-tokens",
			Usage: "Maximum tokens in the generated answer",
			Value: 256,
		},
		&cli.DurationFlag{
			Name:  "gen-timeout",
			Usage: "Timeout for a single model call",
			Value: 30 * time.Second,
		},
	}
}

func askCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("a question is required")
	}
	if err := core.ValidateTopK(c.Int("top-k")); err != nil {
		return err
	}

	aiConfig := ai.NewConfig(
		ai.WithBackend(c.String("backend")),
		ai.WithHost(c.String("model-host")),
		ai.WithModel(c.String("model")),
		ai.WithAPIToken(c.String("api-token")),
		ai.WithMaxTokens(c.Int("max-tokens")),
		ai.WithTimeout(c.Duration("gen-timeout")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := askdocs.NewDatabase(c.String("db"), askdocs.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	pipeline, err := db.NewPipeline()
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	result, retrieved, err := pipeline.Answer(context.Background(), question, c.Int("top-k"))
	if err != nil {
		return fmt.Errorf("failed to answer question: %w", err)
	}

	fmt.Println(result.Answer)
	if len(retrieved) > 0 {
		fmt.Println("\nSources:")
		for i, hit := range retrieved {
			fmt.Printf("  %d. %s [%.4f]\n", i+1, hit.Document.Title, hit.Score)
		}
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a query is required")
	}
	if err := core.ValidateTopK(c.Int("top-k")); err != nil {
		return err
	}

	db, err := askdocs.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	results, err := db.Retriever().Search(context.Background(), query, c.Int("top-k"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: '%s' (%d)[%0.4f]\n", i+1, hit.Document.Title, hit.Document.Id, hit.Score)
	}
	return nil
}

func indexCommand(c *cli.Context) error {
	db, err := askdocs.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Retriever().Index(ctx, nil); err != nil {
		return fmt.Errorf("index rebuild failed: %w", err)
	}

	count, err := db.DocumentRepository().CountDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to count documents: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Indexed %d documents\n", count)
	return nil
}

func migrateCommand(c *cli.Context) error {
	migrateConfig := &migrate.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	// Validate config
	if migrateConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if migrateConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if migrateConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	db, err := askdocs.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	migrator := migrate.NewMigrator(db.DocumentRepository(), nil, migrateConfig, os.Stderr)
	if err := migrator.Run(context.Background()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func historyCommand(c *cli.Context) error {
	db, err := askdocs.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	var results []*core.QAResult
	if date := c.String("date"); date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
		if err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
		}
		results, err = db.QAResultRepository().GetQAResultsByDateRange(context.Background(), day, day.AddDate(0, 0, 1))
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
	} else {
		var err error
		results, err = db.QAResultRepository().GetRecentQAResults(context.Background(), c.Int("limit"))
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
	}

	for _, result := range results {
		fmt.Printf("[%s] Q: %s\n", result.CreatedAt.Format(time.RFC3339), result.Question)
		fmt.Printf("A: %s\n", result.Answer)
		if len(result.DocumentIds) > 0 {
			fmt.Printf("Sources: %v\n", result.DocumentIds)
		}
		fmt.Println()
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
