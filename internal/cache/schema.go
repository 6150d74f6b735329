package cache

// SQL schemas for cache tables. All cache tables use "cache_key" as the
// primary key column.

// CatalogCacheSchema defines the schema for the catalog page cache. Keys are
// full page URLs so cursor-based pagination caches each page independently.
const CatalogCacheSchema = `
CREATE TABLE IF NOT EXISTS catalog_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_catalog_cached_at ON catalog_cache(cached_at);
`

// AllSchemas contains all cache table schemas for easy initialization.
var AllSchemas = []string{
	CatalogCacheSchema,
}

// ValidTableNames is the whitelist of allowed cache table names, used to
// prevent SQL injection when interpolating table names.
var ValidTableNames = map[string]bool{
	"catalog_cache": true,
}
