package accuracy

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mamaaak/pdf-extraction-tool/constants"
	"github.com/mamaaak/pdf-extraction-tool/internal/pipeline"
)

// TargetAccuracy is the batch pass threshold.
const TargetAccuracy = 0.75

// FileResult is one document's accuracy breakdown.
type FileResult struct {
	Name           string                    `json:"name"`
	DocumentType   constants.DocType         `json:"documentType"`
	Confidence     int                       `json:"confidence"`
	Categories     map[string]CategoryResult `json:"categories"`
	Overall        float64                   `json:"overall"`
	FalsePositives int                       `json:"falsePositives"`
	Err            string                    `json:"error,omitempty"`
}

// SuiteResult is the batch aggregate with its pass/fail verdict.
type SuiteResult struct {
	PerFile []FileResult `json:"perFile"`
	Overall float64      `json:"overall"`
	Target  float64      `json:"target"`
	Passed  bool         `json:"passed"`
}

// Runner drives the full pipeline over a corpus and overlays the ground
// truth comparison. Documents are processed sequentially; each run is
// independent, so nothing here would change under parallel execution.
type Runner struct {
	extractor *pipeline.Extractor
	logger    *slog.Logger
	target    float64
}

func NewRunner(extractor *pipeline.Extractor, target float64, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if target == 0 {
		target = TargetAccuracy
	}
	return &Runner{extractor: extractor, logger: logger, target: target}
}

// Run executes the suite. A document whose pipeline run fails is recorded
// with zero accuracy rather than aborting the batch.
func (r *Runner) Run(ctx context.Context, corpus *Corpus) (*SuiteResult, error) {
	if corpus == nil || len(corpus.Documents) == 0 {
		return nil, fmt.Errorf("empty corpus")
	}

	suite := &SuiteResult{Target: r.target}
	start := time.Now()

	for _, doc := range corpus.Documents {
		fr := r.runOne(ctx, doc)
		suite.PerFile = append(suite.PerFile, fr)
	}

	// Batch aggregate: unweighted mean over documents that carry any ground
	// truth. Failed runs stay in the mean at zero; they are regressions.
	scored := 0
	for _, fr := range suite.PerFile {
		if truthTotal(fr) == 0 && fr.Err == "" {
			continue
		}
		suite.Overall += fr.Overall
		scored++
	}
	if scored > 0 {
		suite.Overall /= float64(scored)
	}
	suite.Passed = suite.Overall >= suite.Target

	r.logger.Info("accuracy.suite.done",
		"documents", len(suite.PerFile),
		"overall", fmt.Sprintf("%.3f", suite.Overall),
		"target", suite.Target,
		"passed", suite.Passed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return suite, nil
}

func (r *Runner) runOne(ctx context.Context, doc Document) FileResult {
	fr := FileResult{Name: doc.Name, Categories: map[string]CategoryResult{}}

	opts := pipeline.Options{}
	if doc.Type != "" {
		dt, _ := constants.ParseDocType(doc.Type)
		opts.ForcedType = dt
	}
	res, err := r.extractor.ClassifyAndExtract(ctx, doc.Text, opts)
	if err != nil {
		r.logger.Error("accuracy.document.failed", "name", doc.Name, "error", err)
		fr.Err = err.Error()
		return fr
	}
	fr.DocumentType = res.DocumentType
	fr.Confidence = res.Confidence

	goals := make([]string, 0, len(res.Data.Goals))
	for _, g := range res.Data.Goals {
		goals = append(goals, g.Description)
	}
	bmps := make([]string, 0, len(res.Data.BMPs))
	for _, b := range res.Data.BMPs {
		bmps = append(bmps, b.Name)
	}
	monitoring := make([]string, 0, len(res.Data.Monitoring))
	for _, m := range res.Data.Monitoring {
		monitoring = append(monitoring, m.Metric)
	}

	fr.Categories["goals"] = MatchCategory(doc.Truth.Goals, goals)
	fr.Categories["bmps"] = MatchCategory(doc.Truth.BMPs, bmps)
	fr.Categories["monitoring"] = MatchCategory(doc.Truth.Monitoring, monitoring)

	// Per-document accuracy: unweighted mean of categories present in the
	// ground truth. Absent categories do not penalize the score.
	sum, n := 0.0, 0
	for _, cr := range fr.Categories {
		fr.FalsePositives += cr.FalsePositives
		if cr.Total == 0 {
			continue
		}
		sum += cr.Accuracy
		n++
	}
	if n > 0 {
		fr.Overall = sum / float64(n)
	}

	r.logger.Info("accuracy.document.done",
		"name", doc.Name,
		"doc_type", fr.DocumentType,
		"overall", fmt.Sprintf("%.3f", fr.Overall),
		"false_positives", fr.FalsePositives,
		"confidence", fr.Confidence,
	)
	return fr
}

func truthTotal(fr FileResult) int {
	total := 0
	for _, cr := range fr.Categories {
		total += cr.Total
	}
	return total
}
