package preprocess

import (
	"regexp"
	"strings"

	"github.com/mamaaak/pdf-extraction-tool/constants"
)

// Result is the preprocessor output: cleaned full text plus the named
// sections that could be located. Missing sections map to empty strings.
type Result struct {
	FullText string
	Sections map[string]string
}

// Boilerplate that PDF text extraction tends to leave behind: page markers,
// bare page numbers, page-break sentinels, repeated separator lines.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^\s*page\s+\d+(\s+of\s+\d+)?\s*$`),
	regexp.MustCompile(`(?im)^\s*-\s*\d+\s*-\s*$`),
	regexp.MustCompile(`(?im)^\s*\d{1,4}\s*$`),
	regexp.MustCompile(`(?im)^\s*-{3,}\s*page\s*break\s*-{3,}\s*$`),
	regexp.MustCompile(`(?m)^\s*[_=*]{4,}\s*$`),
}

var (
	spaceRuns = regexp.MustCompile(`[ \t]+`)
	blankRuns = regexp.MustCompile(`\n{3,}`)
)

// sectionKeywords drives both the strict heading match and the loose
// fallback. Alternations are ordered most-specific first.
var sectionKeywords = map[constants.Section]string{
	constants.SectionGoals:          `goals?( and objectives?)?|objectives?|targets?`,
	constants.SectionBMPs:           `best management practices?|bmps?|management (practices|measures)`,
	constants.SectionImplementation: `implementation( plan| schedule| activities)?|action plan|activities`,
	constants.SectionMonitoring:     `monitoring( plan| program)?|metrics|evaluation|tracking`,
	constants.SectionOutreach:       `outreach|education( and outreach)?|public (participation|involvement|engagement)`,
	constants.SectionGeography:      `geographic (areas?|scope)|watershed description|(study|project) area|priority areas?`,
}

// A heading-like line: optional numbering, starts with a capital, short.
var headingLine = regexp.MustCompile(`(?m)^ {0,3}(\d+(\.\d+)*[.)]?\s+)?[A-Z][A-Za-z0-9 ,/&-]{2,70}:?\s*$`)

var headingRx = map[constants.Section]*regexp.Regexp{}
var keywordRx = map[constants.Section]*regexp.Regexp{}

func init() {
	for sec, kw := range sectionKeywords {
		headingRx[sec] = regexp.MustCompile(`(?im)^ {0,3}(\d+(\.\d+)*[.)]?\s+)?(` + kw + `)\b[^\n]{0,40}$`)
		keywordRx[sec] = regexp.MustCompile(`(?i)\b(` + kw + `)\b`)
	}
}

// Preprocess cleans raw document text and carves out the named sections.
// It never fails: noisy or unstructured input degrades to empty sections.
func Preprocess(raw string) Result {
	clean := CleanText(raw)
	return Result{
		FullText: clean,
		Sections: ExtractSections(clean),
	}
}

// CleanText strips recurring boilerplate and collapses whitespace runs.
func CleanText(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	for _, p := range boilerplatePatterns {
		text = p.ReplaceAllString(text, "")
	}
	text = spaceRuns.ReplaceAllString(text, " ")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// ExtractSections locates each named section in the cleaned text. The strict
// pass anchors on a heading-like line and captures until the next heading or
// end of text. When no heading matches, a loose pass grabs a short span
// around the first keyword occurrence; weaker signal, but better than
// nothing for noisy PDFs.
func ExtractSections(text string) map[string]string {
	sections := make(map[string]string, len(constants.SectionOrder))
	for _, sec := range constants.SectionOrder {
		sections[string(sec)] = extractSection(text, sec)
	}
	return sections
}

func extractSection(text string, sec constants.Section) string {
	if loc := headingRx[sec].FindStringIndex(text); loc != nil {
		body := text[loc[1]:]
		if next := headingLine.FindStringIndex(body); next != nil {
			body = body[:next[0]]
		}
		return strings.TrimSpace(body)
	}
	return looseSpan(text, sec)
}

// looseSpan returns up to a few sentences starting at the first keyword hit.
func looseSpan(text string, sec constants.Section) string {
	loc := keywordRx[sec].FindStringIndex(text)
	if loc == nil {
		return ""
	}
	span := text[loc[0]:]
	const maxSpan = 600
	if len(span) > maxSpan {
		span = span[:maxSpan]
		// cut back to the last full sentence in the window
		if i := strings.LastIndexAny(span, ".!?"); i > 0 {
			span = span[:i+1]
		}
	}
	if i := strings.Index(span, "\n\n"); i > 0 {
		span = span[:i]
	}
	return strings.TrimSpace(span)
}
