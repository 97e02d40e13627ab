// Package accuracy is the offline regression harness: it runs the full
// extraction pipeline over a curated corpus and scores the output against
// manually maintained ground truth.
package accuracy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// GroundTruth lists the identifying strings a correct extraction must find,
// per tracked category. Categories left empty do not penalize the score.
type GroundTruth struct {
	Goals      []string `yaml:"goals"`
	BMPs       []string `yaml:"bmps"`
	Monitoring []string `yaml:"monitoring"`
}

// Document is one corpus entry: inline text or a file reference, plus truth.
type Document struct {
	Name  string      `yaml:"name"`
	Text  string      `yaml:"text"`
	File  string      `yaml:"file"`
	Type  string      `yaml:"type"`
	Truth GroundTruth `yaml:"truth"`
}

// Corpus is the set of (document, ground truth) pairs for one suite run.
type Corpus struct {
	Documents []Document `yaml:"documents"`
}

// LoadCorpus reads a corpus YAML file. File references are resolved relative
// to the corpus file's directory and loaded into Text.
func LoadCorpus(path string) (*Corpus, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	var corpus Corpus
	if err := yaml.Unmarshal(raw, &corpus); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}

	base := filepath.Dir(path)
	for i := range corpus.Documents {
		doc := &corpus.Documents[i]
		if doc.Name == "" {
			doc.Name = fmt.Sprintf("document-%d", i+1)
		}
		if doc.Text != "" || doc.File == "" {
			continue
		}
		ref := doc.File
		if !filepath.IsAbs(ref) {
			ref = filepath.Join(base, ref)
		}
		b, err := os.ReadFile(ref)
		if err != nil {
			return nil, fmt.Errorf("corpus document %q: %w", doc.Name, err)
		}
		doc.Text = string(b)
	}

	for _, doc := range corpus.Documents {
		if strings.TrimSpace(doc.Text) == "" {
			return nil, fmt.Errorf("corpus document %q has no text", doc.Name)
		}
	}
	return &corpus, nil
}
