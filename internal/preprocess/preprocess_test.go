package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlan = `Cedar Creek Watershed Management Plan
Prepared by: Cedar Creek Conservancy
March 12, 2021

Page 1 of 12

1. Goals and Objectives
Reduce nitrogen runoff by 30% within five years.
Restore riparian buffers along 12 miles of stream.

2. Best Management Practices
Cover crops installed on 200 acres.
Streambank fencing for livestock exclusion.

3. Monitoring Plan
Quarterly nitrate sampling at three stations.

Page 2 of 12
`

func TestCleanText_StripsBoilerplate(t *testing.T) {
	clean := CleanText(samplePlan)
	assert.NotContains(t, clean, "Page 1 of 12")
	assert.NotContains(t, clean, "Page 2 of 12")
	assert.Contains(t, clean, "Reduce nitrogen runoff")
}

func TestCleanText_CollapsesWhitespace(t *testing.T) {
	clean := CleanText("too   many    spaces\n\n\n\n\nand blank lines")
	assert.Equal(t, "too many spaces\n\nand blank lines", clean)
}

func TestExtractSections_HeadingMatch(t *testing.T) {
	res := Preprocess(samplePlan)

	require.Contains(t, res.Sections, "goals")
	assert.Contains(t, res.Sections["goals"], "Reduce nitrogen runoff by 30%")
	assert.NotContains(t, res.Sections["goals"], "Cover crops")

	require.Contains(t, res.Sections, "bmps")
	assert.Contains(t, res.Sections["bmps"], "Cover crops installed on 200 acres")

	require.Contains(t, res.Sections, "monitoring")
	assert.Contains(t, res.Sections["monitoring"], "Quarterly nitrate sampling")
}

func TestExtractSections_MissingSectionIsEmpty(t *testing.T) {
	res := Preprocess("An unrelated memo about office furniture.")
	for name, body := range res.Sections {
		assert.Empty(t, body, "section %q should be empty", name)
	}
}

func TestExtractSections_LooseFallback(t *testing.T) {
	// No heading line, keyword buried mid-sentence: the loose pass should
	// still return a nearby span.
	text := "The county adopted several new policies. Monitoring of nitrate levels will continue monthly at the gauge station. Funding was renewed."
	res := Preprocess(text)
	assert.Contains(t, res.Sections["monitoring"], "Monitoring of nitrate levels")
}

func TestPreprocess_NeverErrors(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\n", "short"} {
		res := Preprocess(input)
		assert.NotNil(t, res.Sections)
		assert.Len(t, res.Sections, 6)
	}
}

func TestExtractMetadata(t *testing.T) {
	md := ExtractMetadata(samplePlan)
	assert.Equal(t, "Cedar Creek Watershed Management Plan", md.Title)
	assert.Equal(t, "March 12, 2021", md.Date)
	assert.Equal(t, "Cedar Creek Conservancy", md.Author)
}

func TestExtractMetadata_Empty(t *testing.T) {
	md := ExtractMetadata("")
	assert.Empty(t, md.Title)
	assert.Empty(t, md.Date)
	assert.Empty(t, md.Author)
}
