// Package snapshot captures a headless-browser screenshot of a built galaxy.
package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lepinkainen/nebula/internal/scene"
	"github.com/lepinkainen/nebula/internal/viewer"
)

var (
	captureSnapshot = viewer.Snapshot
	writeThumbnail  = viewer.WriteThumbnail
)

// SnapshotWithParams renders the scene to a temporary viewer page,
// screenshots it and optionally writes a resized thumbnail next to the
// screenshot.
func SnapshotWithParams(scenePath, outputPath string, width, height int64, thumbnailWidth int) error {
	sc, err := scene.Load(scenePath)
	if err != nil {
		return fmt.Errorf("loading scene (run 'nebula build' first?): %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "nebula-snapshot")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "galaxy.html")
	if _, err := viewer.WriteHTML(sc, "nebula galaxy", htmlPath, true); err != nil {
		return fmt.Errorf("rendering viewer page: %w", err)
	}

	if err := captureSnapshot(context.Background(), htmlPath, outputPath, width, height); err != nil {
		return err
	}
	slog.Info("Snapshot written", "file", outputPath, "books", len(sc.Books), "words", len(sc.Words))

	if thumbnailWidth > 0 {
		thumbPath := thumbnailPath(outputPath)
		if err := writeThumbnail(outputPath, thumbPath, thumbnailWidth); err != nil {
			return err
		}
		slog.Info("Thumbnail written", "file", thumbPath, "width", thumbnailWidth)
	}

	return nil
}

// thumbnailPath derives galaxy_thumb.png from galaxy.png.
func thumbnailPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	return strings.TrimSuffix(outputPath, ext) + "_thumb" + ext
}
