package cache

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/lepinkainen/nebula/internal/testutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPage struct {
	URL   string `json:"url"`
	Count int    `json:"count"`
}

func setupTestCache(t *testing.T) *DB {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	env := testutil.NewTestEnv(t)
	dbPath := filepath.Join(env.RootDir(), "test_cache.db")

	db, err := NewDB(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.CreateTable(CatalogCacheSchema))

	viper.Set("cache.ttl", "1h")
	return db
}

func withGlobalCache(t *testing.T, db *DB) {
	t.Helper()

	oldCache := globalCache
	globalCache = db
	globalCacheOnce = sync.Once{}
	globalCacheOnce.Do(func() {})

	t.Cleanup(func() {
		globalCache = oldCache
		globalCacheOnce = sync.Once{}
	})
}

func setCachedAt(t *testing.T, db *DB, tableName, key string, at time.Time) {
	t.Helper()

	_, err := db.db.Exec("UPDATE "+tableName+" SET cached_at = ? WHERE cache_key = ?", at.UTC(), key)
	require.NoError(t, err)
}

func TestGetOrFetchCacheHit(t *testing.T) {
	db := setupTestCache(t)
	withGlobalCache(t, db)

	require.NoError(t, db.Set("catalog_cache", "page-1", `{"url":"page-1","count":32}`))

	fetchCalled := false
	result, fromCache, err := GetOrFetch("catalog_cache", "page-1", func() (testPage, error) {
		fetchCalled = true
		return testPage{}, nil
	})

	require.NoError(t, err)
	assert.True(t, fromCache)
	assert.False(t, fetchCalled, "fetch should not run on a cache hit")
	assert.Equal(t, testPage{URL: "page-1", Count: 32}, result)
}

func TestGetOrFetchCacheMiss(t *testing.T) {
	db := setupTestCache(t)
	withGlobalCache(t, db)

	result, fromCache, err := GetOrFetch("catalog_cache", "page-2", func() (testPage, error) {
		return testPage{URL: "page-2", Count: 7}, nil
	})

	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, 7, result.Count)

	// second call hits the stored value
	_, fromCache, err = GetOrFetch("catalog_cache", "page-2", func() (testPage, error) {
		t.Fatal("fetch should not run")
		return testPage{}, nil
	})
	require.NoError(t, err)
	assert.True(t, fromCache)
}

func TestGetExpiredEntry(t *testing.T) {
	db := setupTestCache(t)

	require.NoError(t, db.Set("catalog_cache", "stale", `{"url":"stale"}`))
	setCachedAt(t, db, "catalog_cache", "stale", time.Now().UTC().Add(-2*time.Hour))

	_, fromCache, err := db.Get("catalog_cache", "stale", time.Hour)
	require.NoError(t, err)
	assert.False(t, fromCache)
}

func TestInvalidTableNameRejected(t *testing.T) {
	db := setupTestCache(t)

	err := db.Set("books; DROP TABLE catalog_cache", "k", "v")
	require.Error(t, err)

	_, _, err = db.Get("nope_cache", "k", time.Hour)
	require.Error(t, err)
}

func TestInvalidateSource(t *testing.T) {
	db := setupTestCache(t)

	require.NoError(t, db.Set("catalog_cache", "a", "{}"))
	require.NoError(t, db.Set("catalog_cache", "b", "{}"))

	deleted, err := db.InvalidateSource("catalog_cache")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, found, err := db.Get("catalog_cache", "a", time.Hour)
	require.NoError(t, err)
	assert.False(t, found)
}
