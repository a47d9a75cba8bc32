package main

import (
	"bufio"
	"context"
	"flag"
	"iter"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/askdocs"
	"github.com/poiesic/askdocs/core"
	"github.com/poiesic/askdocs/ingestion"
)

// documents is a small bilingual corpus for local development. The
// Persian entries deliberately mix Arabic-form characters and zero-width
// joiners to exercise normalization.
var documents = []*core.Document{
	{
		Title:    "Backup Policy",
		FullText: "Backups run nightly at 02:00 and are retained for ninety days. Restore drills happen quarterly.",
		Tags:     []string{"policy", "operations"},
	},
	{
		Title:    "Password Policy",
		FullText: "Passwords must be at least fourteen characters, rotated every ninety days, and stored hashed with a modern KDF.",
		Tags:     []string{"policy", "security"},
	},
	{
		Title:    "Incident Response",
		FullText: "Incidents are triaged within fifteen minutes of detection. Severity one incidents page the on-call engineer immediately.",
		Tags:     []string{"runbook", "security"},
	},
	{
		Title:    "VPN Access",
		FullText: "Connect to the VPN before accessing internal dashboards. Split tunneling is disabled on managed laptops.",
		Tags:     []string{"how-to"},
	},
	{
		Title:    "Onboarding Checklist",
		FullText: "New employees receive laptops during their first week, complete security training in the first month, and meet their onboarding buddy on day one.",
		Tags:     []string{"how-to", "hr"},
	},
	{
		Title:    "Deployment Guide",
		FullText: "Use the canary rollout checklist before deploying to production. Rollbacks must complete within ten minutes.",
		Tags:     []string{"runbook"},
	},
	{
		Title:    "سیاست مدیریت رخداد",
		FullText: "رخدادها باید در پانزده دقیقه اول بررسی اولیه شوند. رخدادهای شدت یک بلافاصله به مهندس کشیک اطلاع داده می‌شوند.",
		Tags:     []string{"policy", "fa"},
	},
	{
		Title:    "سياست پشتيبان‌گيري",
		FullText: "پشتيبان‌گيري هر شب ساعت دو بامداد انجام مي‌شود و نسخه‌ها نود روز نگهداري مي‌شوند.",
		Tags:     []string{"policy", "fa"},
	},
	{
		Title:    "راهنمای دسترسی وی‌پی‌ان",
		FullText: "قبل از دسترسی به داشبوردهای داخلی باید به وی‌پی‌ان متصل شوید.",
		Tags:     []string{"how-to", "fa"},
	},
	{
		Title:    "Cafeteria Hours",
		FullText: "The cafeteria serves lunch between noon and two. Friday menus rotate weekly.",
		Tags:     []string{"facilities"},
	},
}

var (
	seedFileName = flag.String("src", "", "file of seed data, one document per line as: title<TAB>text")
	dbPath       = flag.String("db", "./askdocs_db", "path to BadgerDB database directory")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// documentsFromFile returns an iterator over documents in a file.
// Each line holds a title and full text separated by a tab; malformed
// lines are skipped.
func documentsFromFile(filename string) (iter.Seq[*core.Document], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return func(yield func(*core.Document) bool) {
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			title, text, found := strings.Cut(scanner.Text(), "\t")
			if !found || strings.TrimSpace(title) == "" || strings.TrimSpace(text) == "" {
				continue
			}
			doc := &core.Document{Title: strings.TrimSpace(title), FullText: strings.TrimSpace(text)}
			if !yield(doc) {
				return
			}
		}
	}, nil
}

// documentsFromSlice returns an iterator over a slice of documents.
func documentsFromSlice(docs []*core.Document) iter.Seq[*core.Document] {
	return func(yield func(*core.Document) bool) {
		for _, doc := range docs {
			if !yield(doc) {
				return
			}
		}
	}
}

// ingestBatched reads from a source iterator and ingests documents in batches.
func ingestBatched(ctx context.Context, pipeline *ingestion.Pipeline, source iter.Seq[*core.Document], batchSize int) error {
	batch := make([]*core.Document, 0, batchSize)

	for doc := range source {
		batch = append(batch, doc)
		if len(batch) == batchSize {
			if _, err := pipeline.Ingest(ctx, batch...); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}

	// Process any remaining documents
	if len(batch) > 0 {
		if _, err := pipeline.Ingest(ctx, batch...); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	db, err := askdocs.NewDatabase(*dbPath)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	ingester, err := db.NewIngestionPipeline()
	if err != nil {
		panic(err)
	}
	defer ingester.Release()

	ctx := context.Background()

	// Determine source of seed data
	var source iter.Seq[*core.Document]
	if seedFileName != nil && *seedFileName != "" {
		source, err = documentsFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	} else {
		source = documentsFromSlice(documents)
	}

	// Ingest in batches of 5
	if err := ingestBatched(ctx, ingester, source, 5); err != nil {
		panic(err)
	}
}
