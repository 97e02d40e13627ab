package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"github.com/mamaaak/pdf-extraction-tool/internal/accuracy"
	"github.com/mamaaak/pdf-extraction-tool/internal/common"
	"github.com/mamaaak/pdf-extraction-tool/internal/llm/openai"
	"github.com/mamaaak/pdf-extraction-tool/internal/pipeline"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		corpusPath = flag.String("corpus", "", "corpus YAML file with documents and ground truth (required)")
		out        = flag.String("out", "", "output XLSX path (optional, defaults next to corpus)")
		target     = flag.Float64("target", accuracy.TargetAccuracy, "pass threshold, 0..1")
	)
	flag.Parse()

	if *corpusPath == "" {
		printError("Error: --corpus is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*corpusPath), "accuracy.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	corpus, err := accuracy.LoadCorpus(*corpusPath)
	if err != nil {
		logger.Error("load corpus", "path", *corpusPath, "error", err)
		os.Exit(1)
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
	runner := accuracy.NewRunner(extractor, *target, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	suite, err := runner.Run(ctx, corpus)
	if err != nil {
		logger.Error("accuracy suite failed", "error", err)
		os.Exit(1)
	}

	printSuite(suite)

	if b, err := accuracy.WriteXLSX(suite, logger); err != nil {
		logger.Error("write xlsx", "error", err)
	} else if err := os.WriteFile(*out, b, 0o644); err != nil {
		logger.Error("write xlsx file", "path", *out, "error", err)
	} else {
		fmt.Printf("Breakdown written to %s\n", *out)
	}

	if !suite.Passed {
		os.Exit(1)
	}
}

func printSuite(suite *accuracy.SuiteResult) {
	for _, fr := range suite.PerFile {
		if fr.Err != "" {
			color.Red("  %-32s ERROR: %s", fr.Name, fr.Err)
			continue
		}
		line := fmt.Sprintf("  %-32s %-24s accuracy %5.1f%%  fp %d  confidence %d",
			fr.Name, fr.DocumentType, fr.Overall*100, fr.FalsePositives, fr.Confidence)
		if fr.Overall >= suite.Target {
			color.Green("%s", line)
		} else {
			color.Yellow("%s", line)
		}
	}
	fmt.Println()
	verdict := color.New(color.FgRed, color.Bold).SprintFunc()("FAIL")
	if suite.Passed {
		verdict = color.New(color.FgGreen, color.Bold).SprintFunc()("PASS")
	}
	fmt.Printf("Overall accuracy %.1f%% against target %.0f%%: %s\n",
		suite.Overall*100, suite.Target*100, verdict)
}
