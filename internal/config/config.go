package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// OverwriteFiles controls whether existing output files should be overwritten
	OverwriteFiles bool
	// CatalogBaseURL is the base URL of the book catalog API
	CatalogBaseURL string
	// CatalogMaxPages caps how many catalog pages a build will fetch
	CatalogMaxPages int
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("SceneOutputDir", "./scene/")
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("OverwriteFiles", false)
	viper.SetDefault("catalog.baseurl", "https://gutendex.com/books")
	viper.SetDefault("catalog.maxpages", 3)

	// Get values from viper
	OverwriteFiles = viper.GetBool("OverwriteFiles")
	CatalogBaseURL = viper.GetString("catalog.baseurl")
	CatalogMaxPages = viper.GetInt("catalog.maxpages")
}

// SetOverwriteFiles sets the OverwriteFiles flag
func SetOverwriteFiles(overwrite bool) {
	OverwriteFiles = overwrite
}
