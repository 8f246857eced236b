// Command loanguard runs the extraction pipeline from the shell: analyze a
// loan document, render reports, export checklists, or list alerts,
// without a running server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/loanguard/loanguard/internal/async"
	"github.com/loanguard/loanguard/internal/common"
	"github.com/loanguard/loanguard/internal/docprep"
	"github.com/loanguard/loanguard/internal/entity"
	"github.com/loanguard/loanguard/internal/export"
	"github.com/loanguard/loanguard/internal/extract"
	"github.com/loanguard/loanguard/internal/format"
	"github.com/loanguard/loanguard/internal/ingest"
	"github.com/loanguard/loanguard/internal/llm/anthropic"
	"github.com/loanguard/loanguard/internal/notify"
	processor "github.com/loanguard/loanguard/internal/pipeline"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "analyze":
		err = runAnalyze(os.Args[2:], false, logger)
	case "demo":
		err = runAnalyze(os.Args[2:], true, logger)
	case "batch":
		err = runBatch(os.Args[2:], logger)
	case "export":
		err = runExport(os.Args[2:], logger)
	case "alerts":
		err = runAlerts(os.Args[2:], logger)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("command failed", "cmd", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: loanguard <command> [flags]

commands:
  analyze  -file <path> -loan <id> [-format markdown|checklist|json]
  demo     [-loan <id>] [-format markdown|checklist|json]
  batch    -dir <path> -out <dir> [-workers n] [-sample]
  export   -file <path> -loan <id> -out <path.xlsx>   (or -sample)
  alerts   -file <path> -loan <id>                    (or -sample)`)
}

func extractProfile(ctx context.Context, args analyzeArgs, sample bool, logger *slog.Logger) (*entity.LoanProfile, error) {
	doc := docprep.Document{}
	if args.file != "" {
		raw, err := os.ReadFile(args.file)
		if err != nil {
			return nil, fmt.Errorf("read document: %w", err)
		}
		doc = docprep.Document{Filename: filepath.Base(args.file), Text: string(raw)}
	}

	var primary extract.RequirementExtractor
	if sample {
		primary = extract.NewFixtureExtractor()
	} else {
		cfg := common.LoadConfig().LLM
		client, err := anthropic.NewClient(anthropic.Config{
			APIKey:    cfg.APIKey,
			BaseURL:   cfg.BaseURL,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
			Timeout:   cfg.Timeout,
		}, logger)
		if err != nil {
			return nil, common.WrapError(err, "set ANTHROPIC_API_KEY or use the demo command")
		}
		primary = client
	}

	proc := processor.NewProcessor(logger, primary, nil)
	res, err := proc.Analyze(ctx, doc, args.loan)
	if err != nil {
		return nil, err
	}
	return res.Profile, nil
}

type analyzeArgs struct {
	file   string
	loan   string
	format string
	out    string
	sample bool
}

func parseArgs(name string, argv []string, withOut bool) (analyzeArgs, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var args analyzeArgs
	fs.StringVar(&args.file, "file", "", "path to the loan document text")
	fs.StringVar(&args.loan, "loan", "LOAN-001", "loan identifier")
	fs.StringVar(&args.format, "format", "markdown", "output format: markdown, checklist, or json")
	fs.BoolVar(&args.sample, "sample", false, "use the deterministic sample extractor")
	if withOut {
		fs.StringVar(&args.out, "out", "", "output path for the workbook")
	}
	if err := fs.Parse(argv); err != nil {
		return args, err
	}
	return args, nil
}

func runAnalyze(argv []string, sample bool, logger *slog.Logger) error {
	args, err := parseArgs("analyze", argv, false)
	if err != nil {
		return err
	}
	if !sample && args.file == "" {
		return fmt.Errorf("-file is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	profile, err := extractProfile(ctx, args, sample || args.sample, logger)
	if err != nil {
		return err
	}

	switch args.format {
	case "markdown":
		fmt.Print(format.Markdown(profile, time.Now()))
	case "checklist":
		fmt.Print(format.Checklist(profile))
	case "json":
		raw, err := format.JSONSummary(profile)
		if err != nil {
			return err
		}
		fmt.Println(string(raw))
	default:
		return fmt.Errorf("unknown format %q", args.format)
	}
	return nil
}

func runBatch(argv []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	dir := fs.String("dir", "", "directory of loan document text files")
	out := fs.String("out", "", "directory for rendered reports")
	workers := fs.Int("workers", 4, "concurrent analyses")
	sample := fs.Bool("sample", false, "use the deterministic sample extractor")
	if err := fs.Parse(argv); err != nil {
		return err
	}
	if *dir == "" || *out == "" {
		return fmt.Errorf("-dir and -out are required")
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	files, stats, err := ingest.ScanDirectory(*dir, nil)
	if err != nil {
		return err
	}
	logger.Info("batch scan complete",
		"scanned", stats.Scanned, "matched", stats.Matched, "failed", stats.Failed)

	var primary extract.RequirementExtractor
	if *sample {
		primary = extract.NewFixtureExtractor()
	} else {
		cfg := common.LoadConfig().LLM
		client, err := anthropic.NewClient(anthropic.Config{
			APIKey:    cfg.APIKey,
			BaseURL:   cfg.BaseURL,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
			Timeout:   cfg.Timeout,
		}, logger)
		if err != nil {
			return common.WrapError(err, "set ANTHROPIC_API_KEY or pass -sample")
		}
		primary = client
	}
	proc := processor.NewProcessor(logger, primary, nil)

	var mu sync.Mutex
	var failures int
	queue := async.NewAnalysisQueue(proc, func(_ context.Context, job async.Job, res *processor.Result, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			failures++
			return
		}
		path := filepath.Join(*out, job.LoanID+".md")
		if werr := os.WriteFile(path, []byte(format.Markdown(res.Profile, time.Now())), 0o644); werr != nil {
			logger.Error("write report failed", "loan_id", job.LoanID, "error", werr)
			failures++
		}
	}, logger, async.WithWorkers(*workers))

	for _, f := range files {
		if f.Err != "" {
			continue
		}
		_ = queue.Enqueue(context.Background(), async.Job{
			Document: f.Document,
			LoanID:   f.LoanID,
		})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()
	queue.Shutdown(shutdownCtx)

	if failures > 0 {
		return fmt.Errorf("%d of %d documents failed", failures, stats.Succeeded)
	}
	fmt.Printf("analyzed %d documents into %s\n", stats.Succeeded, *out)
	return nil
}

func runExport(argv []string, logger *slog.Logger) error {
	args, err := parseArgs("export", argv, true)
	if err != nil {
		return err
	}
	if args.out == "" {
		return fmt.Errorf("-out is required")
	}
	if !args.sample && args.file == "" {
		return fmt.Errorf("-file is required (or pass -sample)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	profile, err := extractProfile(ctx, args, args.sample, logger)
	if err != nil {
		return err
	}

	raw, err := export.NewService(logger).ChecklistXLSX(profile)
	if err != nil {
		return err
	}
	if err := os.WriteFile(args.out, raw, 0o644); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", args.out, len(raw))
	return nil
}

func runAlerts(argv []string, logger *slog.Logger) error {
	args, err := parseArgs("alerts", argv, false)
	if err != nil {
		return err
	}
	if !args.sample && args.file == "" {
		return fmt.Errorf("-file is required (or pass -sample)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	profile, err := extractProfile(ctx, args, args.sample, logger)
	if err != nil {
		return err
	}

	alerts := notify.CheckLoan(profile, time.Now())
	raw, err := json.MarshalIndent(alerts, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(raw))
	return nil
}
