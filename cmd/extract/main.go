package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mamaaak/pdf-extraction-tool/constants"
	"github.com/mamaaak/pdf-extraction-tool/internal/common"
	"github.com/mamaaak/pdf-extraction-tool/internal/llm/openai"
	"github.com/mamaaak/pdf-extraction-tool/internal/pdftext"
	"github.com/mamaaak/pdf-extraction-tool/internal/pipeline"
	"github.com/mamaaak/pdf-extraction-tool/internal/store"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		in       = flag.String("in", "", "input document path, .pdf or plain text (required)")
		docType  = flag.String("type", "", "force a document type instead of classifying")
		raw      = flag.Bool("raw", false, "include the raw source text in the output")
		keep     = flag.Bool("store", false, "keep the result in the configured report store")
		out      = flag.String("out", "", "output JSON path (default stdout)")
		logLevel = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	if *in == "" {
		printError("Error: --in is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(*logLevel),
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	text, err := loadText(*in)
	if err != nil {
		logger.Error("load document", "path", *in, "error", err)
		os.Exit(1)
	}

	opts := pipeline.Options{IncludeRawText: *raw}
	if *docType != "" {
		dt, known := constants.ParseDocType(*docType)
		if !known {
			printError("Error: unknown document type %q\n", *docType)
			os.Exit(1)
		}
		opts.ForcedType = dt
	}

	client := openai.NewClient(openai.Config{
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	extractor := pipeline.NewExtractor(client, pipeline.Config{
		MaxPromptChars: cfg.Pipeline.MaxPromptChars,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := extractor.ClassifyAndExtract(ctx, text, opts)
	if err != nil {
		logger.Error("extraction failed", "path", *in, "error", err)
		os.Exit(1)
	}

	if *keep {
		if err := storeResult(ctx, cfg, res, logger); err != nil {
			logger.Warn("store result", "error", err)
		}
	}

	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	if *out == "" {
		fmt.Println(string(b))
		return
	}
	if err := os.WriteFile(*out, b, 0o644); err != nil {
		logger.Error("write output", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("result written", "path", *out, "confidence", res.Confidence)
}

func loadText(path string) (string, error) {
	if constants.MapExtToFormat(filepath.Ext(path)) == "PDF" {
		text, pages, err := pdftext.ExtractText(path)
		if err != nil {
			return "", err
		}
		slog.Debug("pdf text extracted", "path", path, "pages", pages, "bytes", len(text))
		return text, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func storeResult(ctx context.Context, cfg *common.Config, res *pipeline.Result, logger *slog.Logger) error {
	var (
		st  store.ReportStore
		err error
	)
	switch cfg.Store.Driver {
	case "sqlite":
		st, err = store.NewSQLiteStore(ctx, cfg.Store.DSN)
		if err != nil {
			return err
		}
	default:
		st = store.NewMemoryStore()
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn("close report store", "error", cerr)
		}
	}()

	id := uuid.New().String()
	if err := st.Put(ctx, id, res, cfg.Store.TTL); err != nil {
		return err
	}
	logger.Info("result stored", "report_id", id, "driver", cfg.Store.Driver, "ttl", cfg.Store.TTL.String())
	return nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
