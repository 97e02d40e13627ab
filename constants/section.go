package constants

// Section is a named region of a planning document that the preprocessor
// tries to carve out of the raw text.
type Section string

const (
	SectionGoals          Section = "goals"
	SectionBMPs           Section = "bmps"
	SectionImplementation Section = "implementation"
	SectionMonitoring     Section = "monitoring"
	SectionOutreach       Section = "outreach"
	SectionGeography      Section = "geography"
)

// SectionOrder is the capture order for the preprocessor. The order matters
// only for reproducible iteration; sections are independent of one another.
var SectionOrder = []Section{
	SectionGoals,
	SectionBMPs,
	SectionImplementation,
	SectionMonitoring,
	SectionOutreach,
	SectionGeography,
}

func Sections() []string {
	result := make([]string, len(SectionOrder))
	for i, s := range SectionOrder {
		result[i] = string(s)
	}
	return result
}
