// Package filter enforces the zero-invented-facts guarantee: every entity in
// every list section must have its identifying field traceable to the source
// document text, or the entity is dropped before the report is returned.
package filter

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mamaaak/pdf-extraction-tool/internal/report"
)

// exactMatchMaxLen is the length at or below which fuzzy matching is too
// ambiguous and an exact, case-sensitive substring match is required.
const exactMatchMaxLen = 5

var wordRx = regexp.MustCompile(`[\p{L}\p{N}]+`)

// Apply removes, from every list section, entities whose identifying field
// cannot be located in the source text. The input record is not mutated; the
// returned record shares unfiltered values with it. Applying the filter a
// second time to its own output is a no-op.
func Apply(record map[string]any, source string) map[string]any {
	out := make(map[string]any, len(record))
	for k, v := range record {
		out[k] = v
	}
	for _, section := range report.ListSections {
		arr, ok := out[section].([]any)
		if !ok {
			continue
		}
		field := report.IdentifyingField[section]
		kept := make([]any, 0, len(arr))
		for _, item := range arr {
			entity, ok := item.(map[string]any)
			if !ok {
				continue
			}
			id, _ := entity[field].(string)
			if MatchesSource(id, source) {
				kept = append(kept, item)
			}
		}
		out[section] = kept
	}
	return out
}

// MatchesSource reports whether s can be located in the source text. Short
// strings must appear verbatim; longer strings are matched with a tolerant
// pattern that treats whitespace runs as flexible and punctuation as
// optional, case-insensitively. This bridges minor LLM transcription drift
// without admitting invented content.
func MatchesSource(s, source string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if utf8.RuneCountInString(s) <= exactMatchMaxLen {
		return strings.Contains(source, s)
	}
	rx, err := FlexiblePattern(s)
	if err != nil {
		return false
	}
	return rx.MatchString(source)
}

// FlexiblePattern compiles the tolerant search pattern for a string: word
// tokens kept verbatim, any run of whitespace/punctuation between them
// accepted (including none, so hyphenation and spacing variants both match).
func FlexiblePattern(s string) (*regexp.Regexp, error) {
	tokens := wordRx.FindAllString(s, -1)
	if len(tokens) == 0 {
		return nil, errors.New("no word tokens")
	}
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		quoted[i] = regexp.QuoteMeta(tok)
	}
	return regexp.Compile(`(?i)` + strings.Join(quoted, `[\s\p{P}\p{S}]*`))
}
