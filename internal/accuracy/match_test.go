package accuracy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Reduce runoff", "reduce  runoff"))
	assert.Greater(t, Similarity("Reduce nitrogen runoff by 30%", "Reduce nitrogen runoff by 30 percent"), 0.70)
	assert.Less(t, Similarity("Reduce nitrogen runoff", "Expand public parking"), 0.40)
}

func TestMatches_ShortStringsExact(t *testing.T) {
	assert.True(t, Matches("pH", "ph"), "normalization folds case before the exact comparison")
	assert.False(t, Matches("pH", "pHx"))
	assert.False(t, Matches("", "anything"))
	assert.False(t, Matches("anything", ""))
}

func TestMatches_Threshold(t *testing.T) {
	assert.True(t, Matches("Install riparian buffers", "Install riparian buffer"))
	assert.False(t, Matches("Install riparian buffers", "Acquire new sampling drones"))
}

func TestMatchCategory_SpecScenario(t *testing.T) {
	truth := []string{
		"Reduce nitrogen runoff by 30%",
		"Restore riparian buffers",
		"Expand cover crop adoption",
	}
	extracted := []string{
		"Reduce nitrogen runoff by 30 percent",
		"Restore riparian buffers",
		"Build a new visitor center", // not in the ground truth
	}

	res := MatchCategory(truth, extracted)

	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Matched)
	assert.Equal(t, 1, res.FalsePositives)
	assert.InDelta(t, 2.0/3.0, res.Accuracy, 1e-9)
}

func TestMatchCategory_EmptyTruth(t *testing.T) {
	res := MatchCategory(nil, []string{"anything extracted"})
	assert.Equal(t, 0, res.Total)
	assert.Equal(t, 0, res.Matched)
	assert.Equal(t, 1, res.FalsePositives)
	assert.Zero(t, res.Accuracy)
}

func TestMatchCategory_EmptyExtracted(t *testing.T) {
	res := MatchCategory([]string{"a goal statement"}, nil)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 0, res.Matched)
	assert.Equal(t, 0, res.FalsePositives)
	assert.Zero(t, res.Accuracy)
}

func TestMatchCategory_EachCandidateClaimedOnce(t *testing.T) {
	truth := []string{"Reduce nitrogen runoff", "Reduce nitrogen runoff"}
	extracted := []string{"Reduce nitrogen runoff"}

	res := MatchCategory(truth, extracted)
	assert.Equal(t, 1, res.Matched)
	assert.Equal(t, 0, res.FalsePositives)
}

func TestMatchCategory_Deterministic(t *testing.T) {
	truth := []string{"Streambank stabilization", "Nutrient management planning"}
	extracted := []string{"Nutrient management plan", "Streambank stabilization work"}

	first := MatchCategory(truth, extracted)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, MatchCategory(truth, extracted))
	}
}
