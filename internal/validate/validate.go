// Package validate runs structural and cross-referential checks over a
// filtered extraction record and reduces the tally to a confidence score.
package validate

import (
	"fmt"

	"github.com/mamaaak/pdf-extraction-tool/internal/filter"
	"github.com/mamaaak/pdf-extraction-tool/internal/llm"
	"github.com/mamaaak/pdf-extraction-tool/internal/report"
)

// maxIssuesPerSection caps how many per-section issues roll up into the
// aggregate list, so a badly mangled reply does not flood callers.
const maxIssuesPerSection = 3

// SectionValidation is the per-section check tally.
type SectionValidation struct {
	TotalChecks  int      `json:"totalChecks"`
	PassedChecks int      `json:"passedChecks"`
	Issues       []string `json:"issues"`
}

// Result aggregates all validation checks for one extraction. Issues are
// advisory: validation never fails a request, it only discounts confidence.
type Result struct {
	TotalChecks       int                          `json:"totalChecks"`
	PassedChecks      int                          `json:"passedChecks"`
	SectionValidation map[string]SectionValidation `json:"sectionValidation"`
	Issues            []string                     `json:"issues"`
}

// Validate checks a filtered record against the source text. Each check
// counts once toward the tally regardless of severity:
//
//  1. the record validates against the report JSON schema (root object shape)
//  2. each required top-level key is present
//  3. each entity's identifying field re-verifies against the source text
//     (already-filtered records should pass this at 100%; a failure here
//     means an entity slipped through the filter)
//  4. summary counts agree with array lengths (mismatch is an issue only)
func Validate(record map[string]any, source string) Result {
	res := Result{SectionValidation: map[string]SectionValidation{}}

	// 1. structural
	res.TotalChecks++
	if err := llm.ValidateAgainstSchema(report.BuildReportJSONSchema(), record); err != nil {
		res.Issues = append(res.Issues, fmt.Sprintf("structure: %v", err))
	} else {
		res.PassedChecks++
	}

	// 2. required sections
	for _, key := range report.RequiredSections {
		res.TotalChecks++
		if _, ok := record[key]; ok {
			res.PassedChecks++
		} else {
			res.Issues = append(res.Issues, fmt.Sprintf("missing required section %q", key))
		}
	}

	// 3. per-entity presence re-check
	for _, section := range report.ListSections {
		sv := validateSection(record, section, source)
		res.TotalChecks += sv.TotalChecks
		res.PassedChecks += sv.PassedChecks
		res.SectionValidation[section] = sv
		for i, issue := range sv.Issues {
			if i == maxIssuesPerSection {
				res.Issues = append(res.Issues, fmt.Sprintf("%s: %d further issues omitted", section, len(sv.Issues)-maxIssuesPerSection))
				break
			}
			res.Issues = append(res.Issues, issue)
		}
	}

	// 4. summary consistency
	res.merge(checkSummaryCount(record, "totalGoals", "goals"))
	res.merge(checkSummaryCount(record, "totalBMPs", "bmps"))

	return res
}

func validateSection(record map[string]any, section, source string) SectionValidation {
	sv := SectionValidation{Issues: []string{}}
	field := report.IdentifyingField[section]
	for i, entity := range report.Entities(record, section) {
		sv.TotalChecks++
		id, _ := entity[field].(string)
		if filter.MatchesSource(id, source) {
			sv.PassedChecks++
		} else {
			sv.Issues = append(sv.Issues, fmt.Sprintf("%s[%d]: %s %q not found in source text", section, i, field, id))
		}
	}
	return sv
}

// checkSummaryCount compares a declared summary count against the filtered
// array length. Mismatches degrade confidence but never fail the request.
func checkSummaryCount(record map[string]any, counter, section string) (passed bool, issue string) {
	summary, ok := record["summary"].(map[string]any)
	if !ok {
		return false, fmt.Sprintf("summary missing, cannot verify %s", counter)
	}
	declared, ok := summary[counter].(float64)
	if !ok {
		return false, fmt.Sprintf("summary.%s missing or non-numeric", counter)
	}
	actual := len(report.Entities(record, section))
	if int(declared) != actual {
		return false, fmt.Sprintf("summary.%s=%d does not match %d entries in %s", counter, int(declared), actual, section)
	}
	return true, ""
}

func (r *Result) merge(passed bool, issue string) {
	r.TotalChecks++
	if passed {
		r.PassedChecks++
	} else if issue != "" {
		r.Issues = append(r.Issues, issue)
	}
}
