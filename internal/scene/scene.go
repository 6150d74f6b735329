// Package scene holds the serializable galaxy model: the fetched books plus
// every word placed on the sphere. A scene is built once from a catalog and
// written to disk; the explorer and snapshot commands load it back without
// refetching anything.
package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lepinkainen/nebula/internal/catalog"
	"github.com/lepinkainen/nebula/internal/geom"
	"github.com/lepinkainen/nebula/internal/layout"
)

// Word is one placed word. Books holds indices into Scene.Books; a book that
// contributed the word through several subjects appears once per occurrence.
type Word struct {
	Text      string    `json:"text"`
	Frequency int       `json:"frequency"`
	Position  geom.Vec3 `json:"position"`
	Size      float64   `json:"size"`
	Books     []int     `json:"books"`
}

// Scene is the full galaxy model.
type Scene struct {
	Radius float64         `json:"radius"`
	Books  []*catalog.Book `json:"books"`
	Words  []Word          `json:"words"`
}

// Assemble builds a scene from the fetched books and their computed
// placements. Placement entries reference books by pointer; the scene stores
// them as indices so the model survives a JSON round trip.
func Assemble(books []*catalog.Book, radius float64, placements []layout.Placement) *Scene {
	bookIndex := make(map[*catalog.Book]int, len(books))
	for i, b := range books {
		bookIndex[b] = i
	}

	sc := &Scene{
		Radius: radius,
		Books:  books,
		Words:  make([]Word, 0, len(placements)),
	}

	for _, p := range placements {
		refs := make([]int, 0, len(p.Entry.Books))
		for _, b := range p.Entry.Books {
			if idx, ok := bookIndex[b]; ok {
				refs = append(refs, idx)
			}
		}
		sc.Words = append(sc.Words, Word{
			Text:      p.Entry.Word,
			Frequency: p.Entry.Frequency,
			Position:  p.Position,
			Size:      p.Size,
			Books:     refs,
		})
	}

	return sc
}

// Load reads a scene previously written with fileutil.WriteJSONFile.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}

	var sc Scene
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scene file: %w", err)
	}
	return &sc, nil
}

// WordBooks resolves the book references of the word at the given index.
// Out-of-range references are skipped rather than treated as errors, so a
// hand-edited scene file degrades instead of crashing the explorer.
func (s *Scene) WordBooks(wordIndex int) []*catalog.Book {
	if wordIndex < 0 || wordIndex >= len(s.Words) {
		return nil
	}

	refs := s.Words[wordIndex].Books
	books := make([]*catalog.Book, 0, len(refs))
	for _, idx := range refs {
		if idx >= 0 && idx < len(s.Books) {
			books = append(books, s.Books[idx])
		}
	}
	return books
}
