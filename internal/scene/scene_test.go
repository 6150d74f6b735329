package scene

import (
	"testing"

	"github.com/lepinkainen/nebula/internal/catalog"
	"github.com/lepinkainen/nebula/internal/fileutil"
	"github.com/lepinkainen/nebula/internal/layout"
	"github.com/lepinkainen/nebula/internal/testutil"
	"github.com/lepinkainen/nebula/internal/wordindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestScene(t *testing.T) (*Scene, []*catalog.Book) {
	t.Helper()

	books := []*catalog.Book{
		{Title: "Moby Dick", Subjects: []string{"Sea stories", "Whaling Fiction"}},
		{Title: "Treasure Island", Subjects: []string{"Sea adventure stories"}},
	}

	ix := wordindex.Build(books)
	engine := layout.NewEngine()
	sc := Assemble(books, engine.Radius, engine.Layout(ix.Words()))
	return sc, books
}

func TestAssembleLinksBooksByIndex(t *testing.T) {
	sc, books := buildTestScene(t)

	require.Len(t, sc.Books, 2)
	assert.Equal(t, layout.DefaultRadius, sc.Radius)

	var sea *Word
	for i := range sc.Words {
		if sc.Words[i].Text == "sea" {
			sea = &sc.Words[i]
		}
	}
	require.NotNil(t, sea, "expected 'sea' in the scene")
	assert.Equal(t, 2, sea.Frequency)
	assert.Equal(t, []int{0, 1}, sea.Books)

	resolved := sc.WordBooks(indexOf(t, sc, "sea"))
	assert.Equal(t, books, resolved)
}

func TestAssembleKeepsDuplicateContributions(t *testing.T) {
	books := []*catalog.Book{
		{Title: "One", Subjects: []string{"Sea stories", "Ghost stories"}},
	}
	ix := wordindex.Build(books)
	engine := layout.NewEngine()
	sc := Assemble(books, engine.Radius, engine.Layout(ix.Words()))

	stories := sc.Words[indexOf(t, sc, "stories")]
	assert.Equal(t, []int{0, 0}, stories.Books)
}

func TestSceneRoundTrip(t *testing.T) {
	sc, _ := buildTestScene(t)

	env := testutil.NewTestEnv(t)
	path := env.Path("scene.json")

	written, err := fileutil.WriteJSONFile(sc, path, true)
	require.NoError(t, err)
	require.True(t, written)

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, sc.Radius, loaded.Radius)
	require.Len(t, loaded.Words, len(sc.Words))
	for i := range sc.Words {
		assert.Equal(t, sc.Words[i].Text, loaded.Words[i].Text)
		assert.Equal(t, sc.Words[i].Position, loaded.Words[i].Position)
		assert.Equal(t, sc.Words[i].Books, loaded.Words[i].Books)
	}
}

func TestLoadMissingFile(t *testing.T) {
	env := testutil.NewTestEnv(t)

	_, err := Load(env.Path("nope.json"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFileString("broken.json", "{not json")

	_, err := Load(env.Path("broken.json"))
	assert.Error(t, err)
}

func TestWordBooksSkipsBadReferences(t *testing.T) {
	sc := &Scene{
		Books: []*catalog.Book{{Title: "Only"}},
		Words: []Word{{Text: "w", Books: []int{0, 5, -1}}},
	}

	books := sc.WordBooks(0)
	require.Len(t, books, 1)
	assert.Equal(t, "Only", books[0].Title)

	assert.Nil(t, sc.WordBooks(7))
}

func indexOf(t *testing.T, sc *Scene, text string) int {
	t.Helper()
	for i := range sc.Words {
		if sc.Words[i].Text == text {
			return i
		}
	}
	t.Fatalf("word %q not in scene", text)
	return -1
}
