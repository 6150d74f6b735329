// Package wordindex builds the frequency-weighted word model that drives the
// galaxy: every word appearing in a book subject becomes an entry sized by
// how often it occurs, linked to the books that contributed it.
package wordindex

import (
	"github.com/lepinkainen/nebula/internal/catalog"
)

// Entry is one indexed word. Frequency counts occurrences across all
// subjects of all books; a book appears once in Books per contributing
// occurrence, so a book that mentions the word in several subjects is listed
// several times. That duplication is deliberate and preserved downstream.
type Entry struct {
	Word      string
	Frequency int
	Books     []*catalog.Book
}

// Index maps normalized words to their entries while remembering first-seen
// order, so sphere layout stays deterministic for a given catalog order.
type Index struct {
	entries map[string]*Entry
	order   []string
}

// Build indexes the subjects of the given books. Books without subjects
// contribute nothing; the result is deterministic for a given input order.
func Build(books []*catalog.Book) *Index {
	ix := &Index{entries: make(map[string]*Entry)}

	for _, book := range books {
		for _, subject := range book.Subjects {
			for _, word := range Tokenize(subject) {
				ix.add(word, book)
			}
		}
	}

	return ix
}

func (ix *Index) add(word string, book *catalog.Book) {
	entry, ok := ix.entries[word]
	if !ok {
		entry = &Entry{Word: word}
		ix.entries[word] = entry
		ix.order = append(ix.order, word)
	}
	entry.Frequency++
	entry.Books = append(entry.Books, book)
}

// Words returns all entries in first-seen order.
func (ix *Index) Words() []*Entry {
	words := make([]*Entry, 0, len(ix.order))
	for _, w := range ix.order {
		words = append(words, ix.entries[w])
	}
	return words
}

// Lookup returns the entry for a normalized word.
func (ix *Index) Lookup(word string) (*Entry, bool) {
	entry, ok := ix.entries[word]
	return entry, ok
}

// Len returns the number of distinct words in the index.
func (ix *Index) Len() int {
	return len(ix.order)
}
