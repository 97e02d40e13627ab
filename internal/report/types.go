// Package report defines the fixed output shape of the extraction pipeline
// and the coercion from the LLM's untyped JSON into that shape.
package report

// Summary carries the document-level counts the LLM declares. After
// filtering, TotalGoals/TotalBMPs should agree with the array lengths; a
// mismatch is surfaced as a validation issue, not an error.
type Summary struct {
	TotalGoals     int     `json:"totalGoals"`
	TotalBMPs      int     `json:"totalBMPs"`
	CompletionRate float64 `json:"completionRate"`
}

// Goal is a stated objective of the plan. Description is the identifying
// field used for source-text verification.
type Goal struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Status      string   `json:"status,omitempty"`
	TargetDate  string   `json:"targetDate,omitempty"`
	RelatedBMPs []string `json:"relatedBMPs,omitempty"`
}

// BMP is a best management practice. Name is the identifying field.
type BMP struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category,omitempty"`
	Effectiveness float64 `json:"effectiveness,omitempty"`
}

// Activity is an implementation activity. Description is the identifying field.
type Activity struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Status      string   `json:"status,omitempty"`
	Progress    float64  `json:"progress,omitempty"`
	Responsible []string `json:"responsible,omitempty"`
	Timeline    string   `json:"timeline,omitempty"`
}

// Metric is a monitoring metric. Metric is the identifying field.
type Metric struct {
	ID          string   `json:"id"`
	Metric      string   `json:"metric"`
	Value       string   `json:"value,omitempty"`
	Target      string   `json:"target,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	Frequency   string   `json:"frequency,omitempty"`
	Responsible []string `json:"responsible,omitempty"`
}

// OutreachActivity is an education/outreach effort. Activity is the
// identifying field.
type OutreachActivity struct {
	ID       string   `json:"id"`
	Activity string   `json:"activity"`
	Audience []string `json:"audience,omitempty"`
	Type     string   `json:"type,omitempty"`
	Timeline string   `json:"timeline,omitempty"`
}

// GeographicArea is a named spatial unit. Name is the identifying field.
type GeographicArea struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Size        float64 `json:"size,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	Description string  `json:"description,omitempty"`
}

// ExtractedReport is the central output record. The shape is fixed
// regardless of document type; absent sections are empty arrays.
type ExtractedReport struct {
	Summary         Summary            `json:"summary"`
	Goals           []Goal             `json:"goals"`
	BMPs            []BMP              `json:"bmps"`
	Implementation  []Activity         `json:"implementation"`
	Monitoring      []Metric           `json:"monitoring"`
	Outreach        []OutreachActivity `json:"outreach"`
	GeographicAreas []GeographicArea   `json:"geographicAreas"`
}
