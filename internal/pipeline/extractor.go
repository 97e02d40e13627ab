// Package pipeline wires the extraction chain: preprocess, classify, prompt,
// complete, parse, filter, validate, score. Each run is a pure function over
// its inputs apart from the one blocking completion call, so independent
// documents can be processed concurrently with separate calls.
package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mamaaak/pdf-extraction-tool/constants"
	"github.com/mamaaak/pdf-extraction-tool/internal/classify"
	"github.com/mamaaak/pdf-extraction-tool/internal/common"
	"github.com/mamaaak/pdf-extraction-tool/internal/filter"
	"github.com/mamaaak/pdf-extraction-tool/internal/llm"
	"github.com/mamaaak/pdf-extraction-tool/internal/preprocess"
	"github.com/mamaaak/pdf-extraction-tool/internal/report"
	"github.com/mamaaak/pdf-extraction-tool/internal/validate"
)

type Config struct {
	MaxPromptChars int
}

// Options adjusts a single extraction request.
type Options struct {
	// ForcedType overrides the classifier; the detected type is then
	// informational metadata only.
	ForcedType constants.DocType
	// IncludeRawText echoes the submitted text back in the result.
	IncludeRawText bool
}

// Result is the full pipeline output for one document.
type Result struct {
	Data         report.ExtractedReport `json:"data"`
	DocumentType constants.DocType      `json:"documentType"`
	DetectedType constants.DocType      `json:"detectedType"`
	Metadata     preprocess.Metadata    `json:"metadata"`
	Sections     map[string]string      `json:"-"`
	Validation   validate.Result        `json:"validation"`
	Confidence   int                    `json:"confidence"`
	RawText      string                 `json:"rawText,omitempty"`
}

// Extractor coordinates one extraction chain around a Completer.
type Extractor struct {
	completer llm.Completer
	logger    *slog.Logger
	cfg       Config
}

func NewExtractor(completer llm.Completer, cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxPromptChars == 0 {
		cfg.MaxPromptChars = 12000
	}
	return &Extractor{completer: completer, logger: logger, cfg: cfg}
}

// ClassifyAndExtract runs the whole chain over raw document text.
//
// Failure policy: empty input and unparseable replies fail the request with
// no partial data; completion-service failures propagate verbatim for
// caller-side retry. Everything else degrades to validation issues on a
// result that is still returned.
func (e *Extractor) ClassifyAndExtract(ctx context.Context, text string, opts Options) (*Result, error) {
	rid := uuid.New().String()
	start := time.Now()

	if strings.TrimSpace(text) == "" {
		return nil, common.NewInputError("no text to extract from")
	}

	pre := preprocess.Preprocess(text)
	detected := classify.Classify(text)
	docType := detected
	if opts.ForcedType != "" {
		docType = opts.ForcedType
	}
	meta := preprocess.ExtractMetadata(text)

	e.logger.Info("pipeline.extract.start",
		"req_id", rid,
		"doc_type", docType,
		"detected_type", detected,
		"text_len", len(text),
		"sections_found", countNonEmpty(pre.Sections),
	)

	prompt := llm.BuildExtractionPrompt(pre.FullText, docType, e.cfg.MaxPromptChars)
	reply, err := e.completer.Complete(ctx, prompt)
	if err != nil {
		e.logger.Error("pipeline.extract.completion_failed", "req_id", rid, "error", err)
		return nil, common.WrapError(err, "extraction call")
	}

	record, err := llm.ExtractJSON(reply)
	if err != nil {
		e.logger.Error("pipeline.extract.parse_failed", "req_id", rid, "error", err, "reply_len", len(reply))
		return nil, err
	}

	// Anti-hallucination pass runs against the original source text so the
	// verbatim evidence, not the cleaned copy, is what entities must trace to.
	filtered := filter.Apply(record, text)
	vr := validate.Validate(filtered, text)
	conf := validate.Confidence(vr)

	res := &Result{
		Data:         report.Coerce(filtered),
		DocumentType: docType,
		DetectedType: detected,
		Metadata:     meta,
		Sections:     pre.Sections,
		Validation:   vr,
		Confidence:   conf,
	}
	if opts.IncludeRawText {
		res.RawText = text
	}

	if validate.IsLowConfidence(conf) {
		e.logger.Warn("pipeline.extract.low_confidence",
			"req_id", rid, "confidence", conf,
			"passed", vr.PassedChecks, "total", vr.TotalChecks,
		)
	}
	e.logger.Info("pipeline.extract.ok",
		"req_id", rid,
		"doc_type", docType,
		"goals", len(res.Data.Goals),
		"bmps", len(res.Data.BMPs),
		"confidence", conf,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

func countNonEmpty(sections map[string]string) int {
	n := 0
	for _, v := range sections {
		if v != "" {
			n++
		}
	}
	return n
}
