package llm

import (
	"encoding/json"
	"strings"

	"github.com/mamaaak/pdf-extraction-tool/constants"
	"github.com/mamaaak/pdf-extraction-tool/internal/report"
)

// TruncationMarker is appended when source text exceeds the prompt budget.
const TruncationMarker = "\n...(truncated)"

// BuildExtractionPrompt composes the single extraction instruction: the
// (possibly truncated) source text, the exact target JSON schema, and the
// fidelity rules. The wording here is a replaceable implementation detail;
// the schema and the rules are the contract.
func BuildExtractionPrompt(text string, docType constants.DocType, maxChars int) string {
	if maxChars > 0 && len(text) > maxChars {
		text = text[:maxChars] + TruncationMarker
	}

	parts := []string{
		"You are an analyst extracting structured records from a " + describeType(docType) + ".",
		"Return ONLY a JSON object that matches the JSON Schema below.",
		"Fidelity rules:",
		"- Never invent values. Every extracted string must be copied or closely quoted from the document text.",
		"- Use null for scalar fields the document does not state.",
		"- Use an empty array for list sections the document does not cover.",
		"- Always represent list sections as arrays, even for a single item.",
		"- Set summary.totalGoals and summary.totalBMPs to the lengths of the goals and bmps arrays.",
		"",
		"JSON Schema:",
		mustJSON(report.BuildReportJSONSchema()),
		"",
		"Document text:",
		text,
	}
	return strings.Join(parts, "\n")
}

func describeType(dt constants.DocType) string {
	switch dt {
	case constants.WatershedPlan:
		return "watershed management plan"
	case constants.EnvironmentalAssessment:
		return "environmental assessment"
	case constants.AgriculturalReport:
		return "agricultural report"
	case constants.ConservationPlan:
		return "conservation plan"
	case constants.RegulatoryDocument:
		return "regulatory document"
	case constants.ClimateStudy:
		return "climate study"
	default:
		return "planning document"
	}
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
