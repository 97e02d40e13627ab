package accuracy

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// MatchThreshold is the normalized similarity at or above which a ground
// truth entity and an extracted entity are considered the same.
const MatchThreshold = 0.70

// exactMatchMaxLen mirrors the hallucination filter's policy: strings this
// short are matched exactly, never fuzzily.
const exactMatchMaxLen = 5

var spaceRx = regexp.MustCompile(`\s+`)

// CategoryResult is the per-category score for one document.
type CategoryResult struct {
	Total          int     `json:"total"`
	Matched        int     `json:"matched"`
	FalsePositives int     `json:"falsePositives"`
	Accuracy       float64 `json:"accuracy"`
}

// Similarity is the normalized Levenshtein similarity of two strings after
// case folding and whitespace collapsing. 1 means identical.
func Similarity(a, b string) float64 {
	return levenshtein.Similarity(normalize(a), normalize(b), nil)
}

// Matches applies the harness matching policy to one truth/candidate pair.
func Matches(truth, candidate string) bool {
	t, c := normalize(truth), normalize(candidate)
	if t == "" || c == "" {
		return false
	}
	if utf8.RuneCountInString(t) <= exactMatchMaxLen {
		return t == c
	}
	return levenshtein.Similarity(t, c, nil) >= MatchThreshold
}

// MatchCategory scores one category: each ground truth entity claims its
// best still-unclaimed extracted candidate; extracted entities no truth
// entity claims count as false positives. Matching is deterministic given
// fixed inputs: truth entities are processed in order and ties go to the
// earliest candidate.
func MatchCategory(truth, extracted []string) CategoryResult {
	res := CategoryResult{Total: len(truth)}
	claimed := make([]bool, len(extracted))

	for _, want := range truth {
		best, bestSim := -1, 0.0
		for i, got := range extracted {
			if claimed[i] || !Matches(want, got) {
				continue
			}
			if sim := Similarity(want, got); sim > bestSim {
				best, bestSim = i, sim
			}
		}
		if best >= 0 {
			claimed[best] = true
			res.Matched++
		}
	}
	for _, c := range claimed {
		if !c {
			res.FalsePositives++
		}
	}
	if res.Total > 0 {
		res.Accuracy = float64(res.Matched) / float64(res.Total)
	}
	return res
}

func normalize(s string) string {
	return spaceRx.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}
