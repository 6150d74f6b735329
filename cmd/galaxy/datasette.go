package galaxy

import (
	"strings"

	"github.com/lepinkainen/nebula/internal/catalog"
	"github.com/lepinkainen/nebula/internal/cmdutil"
	"github.com/lepinkainen/nebula/internal/scene"
)

const wordsSchema = `
CREATE TABLE IF NOT EXISTS galaxy_words (
	word TEXT NOT NULL,
	frequency INTEGER NOT NULL,
	book_count INTEGER NOT NULL,
	x REAL NOT NULL,
	y REAL NOT NULL,
	z REAL NOT NULL,
	size REAL NOT NULL
);
`

const booksSchema = `
CREATE TABLE IF NOT EXISTS galaxy_books (
	title TEXT NOT NULL,
	authors TEXT,
	effective_year INTEGER,
	subjects TEXT,
	languages TEXT,
	download_count INTEGER
);
`

// exportDatastore pushes the built galaxy into the configured datastore so
// it can be browsed with Datasette.
func exportDatastore(sc *scene.Scene) error {
	err := cmdutil.WriteToDatastore(sceneWordStats(sc), wordsSchema, "galaxy_words", "galaxy words",
		func(w wordStats) map[string]any {
			return cmdutil.StructToMap(w, cmdutil.StructToMapOptions{})
		})
	if err != nil {
		return err
	}

	return cmdutil.WriteToDatastore(sc.Books, booksSchema, "galaxy_books", "galaxy books",
		func(b *catalog.Book) map[string]any {
			return map[string]any{
				"title":          b.Title,
				"authors":        b.AuthorNames(),
				"effective_year": b.EffectiveYear(),
				"subjects":       strings.Join(b.Subjects, "; "),
				"languages":      strings.Join(b.Languages, ", "),
				"download_count": b.DownloadCount,
			}
		})
}
