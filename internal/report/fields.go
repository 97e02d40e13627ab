package report

// ListSections enumerates the list-typed keys of the report in a stable order.
var ListSections = []string{
	"goals",
	"bmps",
	"implementation",
	"monitoring",
	"outreach",
	"geographicAreas",
}

// IdentifyingField names the one field per list section whose value must be
// traceable to the source document. This is the canonical convention for the
// whole repository, shared by the hallucination filter, the validator, and
// the accuracy harness.
var IdentifyingField = map[string]string{
	"goals":           "description",
	"bmps":            "name",
	"implementation":  "description",
	"monitoring":      "metric",
	"outreach":        "activity",
	"geographicAreas": "name",
}

// RequiredSections is the minimal key set a parsed record must carry.
var RequiredSections = []string{"summary", "goals", "bmps"}
