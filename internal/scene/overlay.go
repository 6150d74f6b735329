package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lepinkainen/nebula/internal/catalog"
)

// Overlay is the detail text shown while hovering a planet. All fields are
// preformatted strings so the TUI and the HTML viewer render it the same way.
type Overlay struct {
	Title     string
	Authors   string
	Year      string
	Subjects  string
	Languages string
	Downloads int
}

// NewOverlay builds the overlay for one book. Missing authors fall back to
// "Unknown" for both the name line and the year line; missing subjects or
// languages just produce empty lines.
func NewOverlay(b *catalog.Book) Overlay {
	return Overlay{
		Title:     b.Title,
		Authors:   b.AuthorNames(),
		Year:      overlayYear(b),
		Subjects:  strings.Join(b.Subjects, "; "),
		Languages: strings.Join(b.Languages, ", "),
		Downloads: b.DownloadCount,
	}
}

// overlayYear formats the effective year, or "Unknown" when the book carries
// no author year data at all. Note the asymmetry with timeline filtering:
// the filter substitutes a default year, the overlay admits it doesn't know.
func overlayYear(b *catalog.Book) string {
	if len(b.Authors) == 0 {
		return "Unknown"
	}
	a := b.Authors[0]
	if a.DeathYear == nil && a.BirthYear == nil {
		return "Unknown"
	}
	return strconv.Itoa(b.EffectiveYear())
}

// Lines renders the overlay as display lines in a fixed order.
func (o Overlay) Lines() []string {
	return []string{
		o.Title,
		"by " + o.Authors,
		"Year: " + o.Year,
		"Subjects: " + o.Subjects,
		"Languages: " + o.Languages,
		fmt.Sprintf("Downloads: %d", o.Downloads),
	}
}
