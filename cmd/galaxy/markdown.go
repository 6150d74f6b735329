package galaxy

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/lepinkainen/nebula/internal/catalog"
	"github.com/lepinkainen/nebula/internal/cmdutil"
	"github.com/lepinkainen/nebula/internal/fileutil"
	"github.com/lepinkainen/nebula/internal/frontmatter"
	"github.com/lepinkainen/nebula/internal/scene"
)

// topWordCount caps how many word notes a build writes. Notes exist for
// browsing the biggest words; the full index lives in the scene file.
const topWordCount = 50

// writeWordNotes writes one markdown note per top word into the galaxy
// subdirectory of the markdown output tree.
func writeWordNotes(sc *scene.Scene, overwrite bool) error {
	cfg := &cmdutil.BaseCommandConfig{ConfigKey: "galaxy"}
	if err := cmdutil.SetupOutputDir(cfg); err != nil {
		return err
	}

	written := 0
	for _, idx := range topWordIndices(sc, topWordCount) {
		ok, err := writeWordNote(sc, idx, cfg.OutputDir, overwrite)
		if err != nil {
			return err
		}
		if ok {
			written++
		}
	}

	slog.Info("Wrote word notes", "directory", cfg.OutputDir, "written", written)
	return nil
}

// writeWordNote writes the note for one word. Notes whose frontmatter carries
// locked: true are never rewritten, so hand-edited notes survive rebuilds.
func writeWordNote(sc *scene.Scene, wordIndex int, dir string, overwrite bool) (bool, error) {
	word := sc.Words[wordIndex]
	path := fileutil.GetMarkdownFilePath(word.Text, dir)

	if fileutil.FileExists(path) {
		content, err := os.ReadFile(path)
		if err != nil {
			return false, fmt.Errorf("reading existing note: %w", err)
		}
		if note, err := frontmatter.ParseMarkdown(content); err == nil && note.Frontmatter["locked"] == true {
			slog.Debug("Word note locked, skipping", "file", path)
			return false, nil
		}
	}

	mb := fileutil.NewMarkdownBuilder().
		AddTitle(word.Text).
		AddType("galaxy-word").
		AddField("frequency", word.Frequency).
		AddField("size", word.Size).
		AddTags("nebula", "galaxy-word")

	titles := uniqueTitles(sc.WordBooks(wordIndex))
	mb.AddParagraph(fmt.Sprintf("**%s** appears %d times across the subjects of %d fetched books.",
		word.Text, word.Frequency, len(titles)))

	for _, title := range titles {
		mb.AddListItem(title)
	}

	return fileutil.WriteFileWithOverwrite(path, []byte(mb.Build()), 0644, overwrite)
}

// uniqueTitles collapses duplicate book contributions into one display line
// per book. The index keeps duplicates; notes don't need them.
func uniqueTitles(books []*catalog.Book) []string {
	seen := make(map[*catalog.Book]bool, len(books))
	lines := make([]string, 0, len(books))
	for _, b := range books {
		if seen[b] {
			continue
		}
		seen[b] = true

		overlay := scene.NewOverlay(b)
		lines = append(lines, fmt.Sprintf("%s by %s (%s)", overlay.Title, overlay.Authors, overlay.Year))
	}
	return lines
}

// topWordIndices returns the indices of the highest-frequency words,
// frequency descending with scene order breaking ties.
func topWordIndices(sc *scene.Scene, n int) []int {
	indices := make([]int, len(sc.Words))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return sc.Words[indices[a]].Frequency > sc.Words[indices[b]].Frequency
	})

	if len(indices) > n {
		indices = indices[:n]
	}
	return indices
}
