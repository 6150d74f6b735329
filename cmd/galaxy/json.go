package galaxy

import (
	"path/filepath"

	"github.com/lepinkainen/nebula/internal/fileutil"
	"github.com/lepinkainen/nebula/internal/scene"
	"github.com/spf13/viper"
)

// wordStats is the flat per-word record written by --json and exported to
// the datastore.
type wordStats struct {
	Word      string  `json:"word"`
	Frequency int     `json:"frequency"`
	BookCount int     `json:"book_count"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	Size      float64 `json:"size"`
}

func sceneWordStats(sc *scene.Scene) []wordStats {
	stats := make([]wordStats, 0, len(sc.Words))
	for i, w := range sc.Words {
		stats = append(stats, wordStats{
			Word:      w.Text,
			Frequency: w.Frequency,
			BookCount: len(sc.WordBooks(i)),
			X:         w.Position.X,
			Y:         w.Position.Y,
			Z:         w.Position.Z,
			Size:      w.Size,
		})
	}
	return stats
}

// writeWordsJSON dumps the flat word statistics, defaulting to words.json in
// the JSON output directory.
func writeWordsJSON(sc *scene.Scene, jsonOutput string, overwrite bool) error {
	if jsonOutput == "" {
		jsonOutput = filepath.Join(viper.GetString("JSONOutputDir"), "words.json")
	}

	_, err := fileutil.WriteJSONFile(sceneWordStats(sc), jsonOutput, overwrite)
	return err
}
