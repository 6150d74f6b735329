package galaxy

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lepinkainen/nebula/internal/cache"
	"github.com/lepinkainen/nebula/internal/config"
	"github.com/lepinkainen/nebula/internal/scene"
	"github.com/lepinkainen/nebula/internal/testutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupBuildTest(t *testing.T) *testutil.TestEnv {
	t.Helper()

	env := testutil.NewTestEnv(t)
	testutil.SetTestConfig(t)
	testutil.SetupTestCache(t, env)

	require.NoError(t, cache.ResetGlobalCache())
	t.Cleanup(func() { _ = cache.ResetGlobalCache() })

	viper.Set("SceneOutputDir", env.Path("scene"))
	viper.Set("MarkdownOutputDir", env.Path("markdown"))
	viper.Set("JSONOutputDir", env.Path("json"))
	viper.Set("datasette.enabled", true)
	viper.Set("datasette.dbfile", env.Path("nebula.db"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{
					"title":          "Moby Dick",
					"authors":        []map[string]any{{"name": "Melville, Herman", "birth_year": 1819, "death_year": 1891}},
					"subjects":       []string{"Sea stories", "Whaling -- Fiction"},
					"languages":      []string{"en"},
					"download_count": 12345,
				},
			},
			"next": nil,
		})
	}))
	t.Cleanup(srv.Close)

	config.CatalogBaseURL = srv.URL + "/books"
	config.CatalogMaxPages = 3

	return env
}

func TestBuildGalaxyWritesSceneAndViewer(t *testing.T) {
	env := setupBuildTest(t)

	err := BuildGalaxyWithParams("", false, false, "", "", true)
	require.NoError(t, err)

	env.RequireFileExists("scene/galaxy.json")
	env.RequireFileExists("scene/galaxy.html")

	sc, err := scene.Load(env.Path("scene", "galaxy.json"))
	require.NoError(t, err)
	require.Len(t, sc.Books, 1)
	assert.Equal(t, "Moby Dick", sc.Books[0].Title)

	// "sea", "stories", "whaling", "fiction"
	assert.Len(t, sc.Words, 4)
	env.AssertFileContains("scene/galaxy.html", "Moby Dick")
}

func TestBuildGalaxyWritesOptionalOutputs(t *testing.T) {
	env := setupBuildTest(t)

	err := BuildGalaxyWithParams("", true, true, "", "", true)
	require.NoError(t, err)

	env.RequireFileExists("markdown/galaxy/sea.md")
	env.RequireFileExists("json/words.json")
	env.AssertFileContains("json/words.json", `"word": "sea"`)
}

func TestBuildGalaxyExportsDatastore(t *testing.T) {
	env := setupBuildTest(t)

	require.NoError(t, BuildGalaxyWithParams("", false, false, "", "", true))

	db, err := sql.Open("sqlite", env.Path("nebula.db"))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var words, books int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM galaxy_words").Scan(&words))
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM galaxy_books").Scan(&books))
	assert.Equal(t, 4, words)
	assert.Equal(t, 1, books)
}

func TestBuildGalaxyAppliesPreset(t *testing.T) {
	env := setupBuildTest(t)
	env.WriteFileString("preset.yaml", "radius: 10\n")

	err := BuildGalaxyWithParams("", false, false, "", env.Path("preset.yaml"), true)
	require.NoError(t, err)

	sc, err := scene.Load(env.Path("scene", "galaxy.json"))
	require.NoError(t, err)
	assert.Equal(t, 10.0, sc.Radius)
	for _, w := range sc.Words {
		assert.InDelta(t, 10.0, w.Position.Length(), 1e-9)
	}
}

func TestBuildGalaxyEmptyCatalogStillWritesScene(t *testing.T) {
	env := setupBuildTest(t)

	// point at a server that fails: the build degrades to an empty galaxy
	config.CatalogBaseURL = "http://127.0.0.1:1/books"

	err := BuildGalaxyWithParams("", false, false, "", "", true)
	require.NoError(t, err)

	sc, err := scene.Load(env.Path("scene", "galaxy.json"))
	require.NoError(t, err)
	assert.Empty(t, sc.Books)
	assert.Empty(t, sc.Words)
}

func TestBuildGalaxyCustomOutputDir(t *testing.T) {
	env := setupBuildTest(t)

	err := BuildGalaxyWithParams(env.Path("custom"), false, false, "", "", true)
	require.NoError(t, err)

	env.RequireFileExists("custom/galaxy.json")
	env.RequireFileExists("custom/galaxy.html")
}
