package catalog

import "strings"

// DefaultYear is used for timeline filtering when a book carries no usable
// author year data. It is a deliberate fallback, not an error condition.
const DefaultYear = 1900

// Person is an author entry as returned by the catalog API.
type Person struct {
	Name      string `json:"name"`
	BirthYear *int   `json:"birth_year"`
	DeathYear *int   `json:"death_year"`
}

// Book is one catalog record. Books are immutable once fetched; downstream
// structures hold references to them rather than copies.
type Book struct {
	Title         string   `json:"title"`
	Authors       []Person `json:"authors"`
	Subjects      []string `json:"subjects"`
	Languages     []string `json:"languages"`
	DownloadCount int      `json:"download_count"`
}

// page is one paged API response. Only the consumed fields are mapped.
type page struct {
	Results []Book  `json:"results"`
	Next    *string `json:"next"`
}

// EffectiveYear resolves the year used for timeline filtering: the first
// author's death year if present, else their birth year, else DefaultYear.
func (b *Book) EffectiveYear() int {
	if len(b.Authors) == 0 {
		return DefaultYear
	}
	a := b.Authors[0]
	if a.DeathYear != nil {
		return *a.DeathYear
	}
	if a.BirthYear != nil {
		return *a.BirthYear
	}
	return DefaultYear
}

// AuthorNames joins all author names, or returns "Unknown" when the book has
// none. Used by the detail overlay.
func (b *Book) AuthorNames() string {
	if len(b.Authors) == 0 {
		return "Unknown"
	}
	names := make([]string, 0, len(b.Authors))
	for _, a := range b.Authors {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}
