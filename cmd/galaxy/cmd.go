// Package galaxy implements the build pipeline: fetch catalog pages, index
// subject words, place them on the sphere and write the scene artifacts.
package galaxy

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/lepinkainen/nebula/internal/catalog"
	"github.com/lepinkainen/nebula/internal/config"
	"github.com/lepinkainen/nebula/internal/fileutil"
	"github.com/lepinkainen/nebula/internal/layout"
	"github.com/lepinkainen/nebula/internal/scene"
	"github.com/lepinkainen/nebula/internal/viewer"
	"github.com/lepinkainen/nebula/internal/wordindex"
	"github.com/spf13/viper"
)

// SceneFileName is the scene written under the scene output directory.
const SceneFileName = "galaxy.json"

// ViewerFileName is the standalone HTML page written next to the scene.
const ViewerFileName = "galaxy.html"

// BuildGalaxyWithParams runs the full build: fetch, index, layout, write.
// An empty or partial catalog is not an error; the galaxy just comes out
// smaller.
func BuildGalaxyWithParams(outputDir string, writeMarkdown bool, writeJSON bool, jsonOutput string, presetPath string, overwrite bool) error {
	ctx := context.Background()

	engine := layout.NewEngine()
	if presetPath != "" {
		preset, err := LoadPreset(presetPath)
		if err != nil {
			return fmt.Errorf("loading layout preset: %w", err)
		}
		preset.Apply(engine)
		slog.Info("Applied layout preset", "file", presetPath, "radius", engine.Radius, "sizescale", engine.SizeScale)
	}

	client := catalog.NewClient(
		catalog.WithBaseURL(config.CatalogBaseURL),
		catalog.WithMaxPages(config.CatalogMaxPages),
	)

	books := client.FetchBooks(ctx)
	if len(books) == 0 {
		slog.Warn("No catalog data available, building an empty galaxy")
	}

	index := wordindex.Build(books)
	placements := engine.Layout(index.Words())
	sc := scene.Assemble(books, engine.Radius, placements)

	slog.Info("Galaxy assembled", "books", len(books), "words", index.Len())

	sceneDir := outputDir
	if sceneDir == "" {
		sceneDir = viper.GetString("SceneOutputDir")
	}

	if _, err := fileutil.WriteJSONFile(sc, filepath.Join(sceneDir, SceneFileName), overwrite); err != nil {
		return fmt.Errorf("writing scene: %w", err)
	}
	if _, err := viewer.WriteHTML(sc, "nebula galaxy", filepath.Join(sceneDir, ViewerFileName), overwrite); err != nil {
		return fmt.Errorf("writing viewer page: %w", err)
	}

	if writeMarkdown {
		if err := writeWordNotes(sc, overwrite); err != nil {
			return fmt.Errorf("writing word notes: %w", err)
		}
	}

	if writeJSON {
		if err := writeWordsJSON(sc, jsonOutput, overwrite); err != nil {
			return fmt.Errorf("writing word stats: %w", err)
		}
	}

	if err := exportDatastore(sc); err != nil {
		// the scene on disk is complete at this point, so a datastore
		// failure degrades rather than failing the build
		slog.Error("Datastore export failed", "error", err)
	}

	return nil
}
