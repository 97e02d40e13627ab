// Package classify assigns a document type from a fixed ordered rule list.
// This is a keyword heuristic, not a trained model: the first rule whose
// pattern matches wins, so the declaration order below is a documented
// tie-breaking policy, not an accident.
package classify

import (
	"regexp"

	"github.com/mamaaak/pdf-extraction-tool/constants"
)

type rule struct {
	DocType constants.DocType
	Pattern *regexp.Regexp
}

var rules = []rule{
	{constants.WatershedPlan, regexp.MustCompile(`(?i)watershed(-based)?\s+(plan|management|implementation)|nine[\s-]key[\s-]element|9[\s-]element|\bTMDL\b|total maximum daily load`)},
	{constants.EnvironmentalAssessment, regexp.MustCompile(`(?i)environmental\s+(assessment|impact\s+statement)|\bNEPA\b|finding of no significant impact`)},
	{constants.AgriculturalReport, regexp.MustCompile(`(?i)agricultur(al|e)|crop\s+(yield|rotation|production)|livestock|farmland|nutrient management plan`)},
	{constants.ConservationPlan, regexp.MustCompile(`(?i)conservation\s+(plan|practice|district|easement)|habitat restoration|land stewardship`)},
	{constants.RegulatoryDocument, regexp.MustCompile(`(?i)\bregulation(s)?\b|compliance\s+(plan|report)|permit\s+(application|renewal)|statut(e|ory)|ordinance`)},
	{constants.ClimateStudy, regexp.MustCompile(`(?i)climate\s+(change|study|adaptation|resilience)|greenhouse gas|carbon\s+(emission|sequestration|footprint)`)},
}

// Classify returns the first matching document type, or General when no
// rule matches.
func Classify(text string) constants.DocType {
	for _, r := range rules {
		if r.Pattern.MatchString(text) {
			return r.DocType
		}
	}
	return constants.General
}

// TypeOrder exposes the rule precedence for auditing and tests.
func TypeOrder() []constants.DocType {
	order := make([]constants.DocType, len(rules))
	for i, r := range rules {
		order[i] = r.DocType
	}
	return order
}
