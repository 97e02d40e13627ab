package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamaaak/pdf-extraction-tool/internal/common"
)

func TestExtractJSON_Bare(t *testing.T) {
	record, err := ExtractJSON(`{"summary": {"totalGoals": 2}, "goals": []}`)
	require.NoError(t, err)
	assert.Contains(t, record, "summary")
	assert.Contains(t, record, "goals")
}

func TestExtractJSON_Fenced(t *testing.T) {
	reply := "Here is the extraction:\n```json\n{\"goals\": [{\"id\": \"goal-1\"}]}\n```\nLet me know if you need more."
	record, err := ExtractJSON(reply)
	require.NoError(t, err)
	arr, ok := record["goals"].([]any)
	require.True(t, ok)
	assert.Len(t, arr, 1)
}

func TestExtractJSON_FencedWithoutLanguage(t *testing.T) {
	record, err := ExtractJSON("```\n{\"bmps\": []}\n```")
	require.NoError(t, err)
	assert.Contains(t, record, "bmps")
}

func TestExtractJSON_SurroundedByProse(t *testing.T) {
	reply := `I analyzed the document carefully. {"summary": {"totalGoals": 0, "totalBMPs": 0}} I hope this helps!`
	record, err := ExtractJSON(reply)
	require.NoError(t, err)
	assert.Contains(t, record, "summary")
}

func TestExtractJSON_TrailingBracesInProse(t *testing.T) {
	// Greedy capture overshoots into the prose; the prefix decode recovers.
	reply := `{"goals": []} and note that {this} is commentary`
	record, err := ExtractJSON(reply)
	require.NoError(t, err)
	assert.Contains(t, record, "goals")
}

func TestExtractJSON_NoObject(t *testing.T) {
	for _, reply := range []string{"", "   ", "no json here", "[1, 2, 3]"} {
		_, err := ExtractJSON(reply)
		require.Error(t, err, "reply %q", reply)
		assert.True(t, common.IsParseError(err))
	}
}

func TestExtractJSON_MalformedObject(t *testing.T) {
	_, err := ExtractJSON(`{"goals": [unquoted]}`)
	require.Error(t, err)
	assert.True(t, common.IsParseError(err))
}
