package galaxy

import (
	"testing"

	"github.com/lepinkainen/nebula/internal/catalog"
	"github.com/lepinkainen/nebula/internal/scene"
	"github.com/lepinkainen/nebula/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noteScene() *scene.Scene {
	return &scene.Scene{
		Radius: 100,
		Books: []*catalog.Book{
			{Title: "Moby Dick", Authors: []catalog.Person{{Name: "Melville, Herman"}}},
		},
		Words: []scene.Word{
			{Text: "sea", Frequency: 3, Size: 2.7, Books: []int{0, 0}},
			{Text: "stories", Frequency: 9, Size: 4.6, Books: []int{0}},
			{Text: "rare", Frequency: 1, Size: 1.3, Books: []int{0}},
		},
	}
}

func TestWriteWordNote(t *testing.T) {
	env := testutil.NewTestEnv(t)
	sc := noteScene()

	written, err := writeWordNote(sc, 0, env.RootDir(), true)
	require.NoError(t, err)
	assert.True(t, written)

	env.RequireFileExists("sea.md")
	env.AssertFileContains("sea.md", `title: "sea"`)
	env.AssertFileContains("sea.md", "type: galaxy-word")
	env.AssertFileContains("sea.md", "frequency: 3")
	// duplicate contributions collapse to one list line
	env.AssertFileContains("sea.md", "- Moby Dick by Melville, Herman (Unknown)")
}

func TestWriteWordNoteRespectsLock(t *testing.T) {
	env := testutil.NewTestEnv(t)
	sc := noteScene()

	env.WriteFileString("sea.md", "---\ntitle: \"sea\"\nlocked: true\n---\n\nhand-written notes\n")

	written, err := writeWordNote(sc, 0, env.RootDir(), true)
	require.NoError(t, err)
	assert.False(t, written)
	env.AssertFileContains("sea.md", "hand-written notes")
}

func TestWriteWordNoteSkipsExistingWithoutOverwrite(t *testing.T) {
	env := testutil.NewTestEnv(t)
	sc := noteScene()

	env.WriteFileString("sea.md", "---\ntitle: \"sea\"\n---\n\nold content\n")

	written, err := writeWordNote(sc, 0, env.RootDir(), false)
	require.NoError(t, err)
	assert.False(t, written)
	env.AssertFileContains("sea.md", "old content")
}

func TestWordNoteGolden(t *testing.T) {
	env := testutil.NewTestEnv(t)
	sc := noteScene()

	written, err := writeWordNote(sc, 0, env.RootDir(), true)
	require.NoError(t, err)
	require.True(t, written)

	golden := testutil.NewGoldenHelper(t, "testdata")
	golden.AssertGoldenString("sea.golden.md", env.ReadFileString("sea.md"))
}

func TestTopWordIndices(t *testing.T) {
	sc := noteScene()

	assert.Equal(t, []int{1, 0, 2}, topWordIndices(sc, 10))
	assert.Equal(t, []int{1}, topWordIndices(sc, 1))
	assert.Empty(t, topWordIndices(&scene.Scene{}, 5))
}
