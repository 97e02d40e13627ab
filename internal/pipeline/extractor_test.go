package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamaaak/pdf-extraction-tool/constants"
	"github.com/mamaaak/pdf-extraction-tool/internal/common"
	"github.com/mamaaak/pdf-extraction-tool/internal/llm"
)

const sourceText = "Watershed management plan for Cedar Creek. Goal: Reduce nitrogen runoff by 30%. BMP: Cover crops installed on 200 acres."

// stubCompleter returns a canned reply and records whether it was called.
type stubCompleter struct {
	reply  string
	err    error
	called int
}

func (s *stubCompleter) Complete(_ context.Context, _ string) (string, error) {
	s.called++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newExtractor(c llm.Completer) *Extractor {
	return NewExtractor(c, Config{MaxPromptChars: 12000}, nil)
}

func TestClassifyAndExtract_EmptyInput(t *testing.T) {
	stub := &stubCompleter{}
	ex := newExtractor(stub)

	for _, input := range []string{"", "   ", "\n\t "} {
		res, err := ex.ClassifyAndExtract(context.Background(), input, Options{})
		require.Error(t, err)
		assert.Nil(t, res)
		assert.True(t, common.IsInputError(err))
	}
	assert.Zero(t, stub.called, "no completion call may be made for empty input")
}

func TestClassifyAndExtract_FiltersFabricatedGoal(t *testing.T) {
	stub := &stubCompleter{reply: `{
		"summary": {"totalGoals": 2, "totalBMPs": 1, "completionRate": 0},
		"goals": [
			{"id": "goal-1", "description": "Reduce nitrogen runoff by 30%"},
			{"id": "goal-2", "description": "Eliminate all pollution by 2025"}
		],
		"bmps": [{"id": "bmp-1", "name": "Cover crops installed on 200 acres"}],
		"implementation": [],
		"monitoring": [],
		"outreach": [],
		"geographicAreas": []
	}`}
	ex := newExtractor(stub)

	res, err := ex.ClassifyAndExtract(context.Background(), sourceText, Options{})
	require.NoError(t, err)

	// The fabricated goal is dropped before the report is returned.
	require.Len(t, res.Data.Goals, 1)
	assert.Equal(t, "Reduce nitrogen runoff by 30%", res.Data.Goals[0].Description)
	require.Len(t, res.Data.BMPs, 1)

	// The declared count no longer matches the filtered array: an issue and
	// a confidence penalty, but still a successful result.
	assert.NotEmpty(t, res.Validation.Issues)
	assert.Less(t, res.Confidence, 100)
	assert.Greater(t, res.Confidence, 0)
	assert.Equal(t, constants.WatershedPlan, res.DocumentType)
}

func TestClassifyAndExtract_ForcedType(t *testing.T) {
	stub := &stubCompleter{reply: `{"summary": {"totalGoals": 0, "totalBMPs": 0}, "goals": [], "bmps": []}`}
	ex := newExtractor(stub)

	res, err := ex.ClassifyAndExtract(context.Background(), sourceText, Options{ForcedType: constants.ClimateStudy})
	require.NoError(t, err)
	assert.Equal(t, constants.ClimateStudy, res.DocumentType)
	assert.Equal(t, constants.WatershedPlan, res.DetectedType, "classifier result stays informational")
}

func TestClassifyAndExtract_DeterministicType(t *testing.T) {
	stub := &stubCompleter{reply: `{"summary": {"totalGoals": 0, "totalBMPs": 0}, "goals": [], "bmps": []}`}
	ex := newExtractor(stub)

	var types []constants.DocType
	for i := 0; i < 5; i++ {
		res, err := ex.ClassifyAndExtract(context.Background(), sourceText, Options{})
		require.NoError(t, err)
		types = append(types, res.DocumentType)
	}
	for _, dt := range types {
		assert.Equal(t, types[0], dt)
	}
}

func TestClassifyAndExtract_UpstreamErrorPropagates(t *testing.T) {
	stub := &stubCompleter{err: common.NewUpstreamError("rate limited", errors.New("429"))}
	ex := newExtractor(stub)

	res, err := ex.ClassifyAndExtract(context.Background(), sourceText, Options{})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, common.IsUpstreamError(err))
	assert.False(t, common.IsParseError(err))
}

func TestClassifyAndExtract_UnparseableReply(t *testing.T) {
	stub := &stubCompleter{reply: "I could not find any structured data in this document."}
	ex := newExtractor(stub)

	res, err := ex.ClassifyAndExtract(context.Background(), sourceText, Options{})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, common.IsParseError(err))
	assert.False(t, common.IsUpstreamError(err))
}

func TestClassifyAndExtract_IncludeRawText(t *testing.T) {
	stub := &stubCompleter{reply: `{"summary": {"totalGoals": 0, "totalBMPs": 0}, "goals": [], "bmps": []}`}
	ex := newExtractor(stub)

	res, err := ex.ClassifyAndExtract(context.Background(), sourceText, Options{IncludeRawText: true})
	require.NoError(t, err)
	assert.Equal(t, sourceText, res.RawText)

	res, err = ex.ClassifyAndExtract(context.Background(), sourceText, Options{})
	require.NoError(t, err)
	assert.Empty(t, res.RawText)
}

func TestClassifyAndExtract_FilterThenValidateConsistency(t *testing.T) {
	// All entities verifiable: the presence re-check must pass at 100% and
	// the summary counts agree, so confidence is full.
	stub := &stubCompleter{reply: "```json\n" + `{
		"summary": {"totalGoals": 1, "totalBMPs": 1, "completionRate": 0},
		"goals": [{"id": "goal-1", "description": "Reduce nitrogen runoff by 30%"}],
		"bmps": [{"id": "bmp-1", "name": "Cover crops installed on 200 acres"}],
		"implementation": [],
		"monitoring": [],
		"outreach": [],
		"geographicAreas": []
	}` + "\n```"}
	ex := newExtractor(stub)

	res, err := ex.ClassifyAndExtract(context.Background(), sourceText, Options{})
	require.NoError(t, err)
	assert.Equal(t, 100, res.Confidence)
	assert.Empty(t, res.Validation.Issues)
}
