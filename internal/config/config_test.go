package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestInitConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	InitConfig()

	assert.False(t, OverwriteFiles)
	assert.Equal(t, "https://gutendex.com/books", CatalogBaseURL)
	assert.Equal(t, 3, CatalogMaxPages)
}

func TestInitConfigReadsViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("OverwriteFiles", true)
	viper.Set("catalog.baseurl", "http://localhost:9999/books")
	viper.Set("catalog.maxpages", 5)

	InitConfig()

	assert.True(t, OverwriteFiles)
	assert.Equal(t, "http://localhost:9999/books", CatalogBaseURL)
	assert.Equal(t, 5, CatalogMaxPages)
}

func TestSetOverwriteFiles(t *testing.T) {
	orig := OverwriteFiles
	t.Cleanup(func() { OverwriteFiles = orig })

	SetOverwriteFiles(true)
	assert.True(t, OverwriteFiles)
}
