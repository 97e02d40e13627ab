package accuracy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCorpus_InlineText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
documents:
  - name: inline-doc
    text: "Goal: Reduce nitrogen runoff."
    truth:
      goals:
        - Reduce nitrogen runoff
`), 0o644))

	corpus, err := LoadCorpus(path)
	require.NoError(t, err)
	require.Len(t, corpus.Documents, 1)
	assert.Equal(t, "inline-doc", corpus.Documents[0].Name)
	assert.Contains(t, corpus.Documents[0].Text, "Reduce nitrogen runoff")
	assert.Equal(t, []string{"Reduce nitrogen runoff"}, corpus.Documents[0].Truth.Goals)
}

func TestLoadCorpus_FileReference(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plan.txt"), []byte("BMP: Cover crops."), 0o644))
	path := filepath.Join(dir, "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
documents:
  - file: plan.txt
    truth:
      bmps:
        - Cover crops
`), 0o644))

	corpus, err := LoadCorpus(path)
	require.NoError(t, err)
	require.Len(t, corpus.Documents, 1)
	assert.Equal(t, "document-1", corpus.Documents[0].Name, "unnamed documents get positional names")
	assert.Equal(t, "BMP: Cover crops.", corpus.Documents[0].Text)
}

func TestLoadCorpus_MissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
documents:
  - name: broken
    file: nope.txt
`), 0o644))

	_, err := LoadCorpus(path)
	assert.Error(t, err)
}

func TestLoadCorpus_EmptyDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
documents:
  - name: empty
    text: "   "
`), 0o644))

	_, err := LoadCorpus(path)
	assert.Error(t, err)
}
