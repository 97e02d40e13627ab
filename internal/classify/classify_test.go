package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mamaaak/pdf-extraction-tool/constants"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		text string
		want constants.DocType
	}{
		{"watershed plan", "This watershed management plan addresses the TMDL for Cedar Creek.", constants.WatershedPlan},
		{"environmental assessment", "Draft Environmental Assessment pursuant to NEPA requirements.", constants.EnvironmentalAssessment},
		{"agricultural report", "Annual report on crop yield and livestock operations.", constants.AgriculturalReport},
		{"conservation plan", "The conservation district proposes habitat restoration projects.", constants.ConservationPlan},
		{"regulatory", "Permit application under the county stormwater ordinance.", constants.RegulatoryDocument},
		{"climate study", "A study of greenhouse gas trends and carbon sequestration potential.", constants.ClimateStudy},
		{"no signal", "Minutes of the library board meeting.", constants.General},
		{"empty", "", constants.General},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.text))
		})
	}
}

func TestClassify_OrderBreaksTies(t *testing.T) {
	// Text matching both the watershed and agricultural rules resolves to
	// the earlier-declared type.
	text := "This watershed management plan covers agricultural runoff from farmland."
	assert.Equal(t, constants.WatershedPlan, Classify(text))
}

func TestClassify_Deterministic(t *testing.T) {
	text := "Conservation plan with agricultural elements for the watershed management plan area."
	first := Classify(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(text))
	}
}

func TestTypeOrder(t *testing.T) {
	order := TypeOrder()
	assert.Equal(t, constants.WatershedPlan, order[0])
	assert.Len(t, order, 6)
	assert.NotContains(t, order, constants.General)
}
