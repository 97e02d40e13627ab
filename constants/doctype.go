package constants

import (
	"strings"
)

// DocType is the closed enumeration of document types the classifier can emit.
type DocType string

const (
	WatershedPlan           DocType = "watershed_plan"
	EnvironmentalAssessment DocType = "environmental_assessment"
	AgriculturalReport      DocType = "agricultural_report"
	ConservationPlan        DocType = "conservation_plan"
	RegulatoryDocument      DocType = "regulatory_document"
	ClimateStudy            DocType = "climate_study"
	General                 DocType = "general"
)

var allDocTypes = []DocType{
	WatershedPlan,
	EnvironmentalAssessment,
	AgriculturalReport,
	ConservationPlan,
	RegulatoryDocument,
	ClimateStudy,
	General,
}

func DocTypes() []string {
	result := make([]string, len(allDocTypes))
	for i, dt := range allDocTypes {
		result[i] = string(dt)
	}
	return result
}

// ParseDocType resolves user-supplied labels (including a few synonyms) into
// a DocType. Unknown labels fall back to General.
func ParseDocType(input string) (DocType, bool) {
	if input == "" {
		return General, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	// synonyms map
	synonyms := map[string]DocType{
		"watershed":    WatershedPlan,
		"wip":          WatershedPlan,
		"nine_element": WatershedPlan,
		"ea":           EnvironmentalAssessment,
		"eis":          EnvironmentalAssessment,
		"assessment":   EnvironmentalAssessment,
		"agriculture":  AgriculturalReport,
		"farm_report":  AgriculturalReport,
		"conservation": ConservationPlan,
		"regulatory":   RegulatoryDocument,
		"permit":       RegulatoryDocument,
		"climate":      ClimateStudy,
	}

	if dt, ok := synonyms[normalized]; ok {
		return dt, true
	}

	for _, dt := range allDocTypes {
		if normalized == string(dt) {
			return dt, true
		}
	}

	return General, false
}
