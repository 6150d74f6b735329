package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/lepinkainen/nebula/cmd/explore"
	"github.com/lepinkainen/nebula/cmd/galaxy"
	"github.com/lepinkainen/nebula/cmd/snapshot"
	"github.com/lepinkainen/nebula/internal/cache"
	"github.com/lepinkainen/nebula/internal/config"
	"github.com/spf13/viper"
)

var (
	buildGalaxy   = galaxy.BuildGalaxyWithParams
	exploreGalaxy = explore.ExploreWithParams
	snapshotScene = snapshot.SnapshotWithParams
)

// CLI represents the complete command structure for the nebula application
type CLI struct {
	// Global flags
	Overwrite bool `help:"Overwrite existing output files when building"`

	// Datasette flags
	Datasette   bool   `help:"Enable Datasette output" default:"true"`
	DatasetteDB string `help:"Path to SQLite database file" default:"./nebula.db"`

	// Cache flags
	CacheDBFile string `help:"Path to cache SQLite database file" default:"./cache.db"`
	CacheTTL    string `help:"Cache time-to-live duration (e.g., 168h for 7 days)" default:"168h"`

	Build    BuildCmd    `cmd:"" help:"Fetch the book catalog and build the galaxy scene"`
	Explore  ExploreCmd  `cmd:"" help:"Explore a built galaxy in the terminal"`
	Snapshot SnapshotCmd `cmd:"" help:"Capture a headless-browser screenshot of a built galaxy"`
	Cache    CacheCmd    `cmd:"" help:"Cache management commands"`
}

// BuildCmd represents the build command
type BuildCmd struct {
	Output     string `short:"o" help:"Directory for scene artifacts (defaults to SceneOutputDir from config)"`
	Markdown   bool   `help:"Write word notes to the markdown output directory"`
	JSON       bool   `help:"Write flat word statistics to JSON"`
	JSONOutput string `help:"Path to JSON output file (defaults to json/words.json)"`
	Preset     string `help:"Path to a YAML layout preset file"`
}

// ExploreCmd represents the explore command
type ExploreCmd struct {
	Scene string `short:"s" help:"Path to a built scene file" default:"./scene/galaxy.json"`
}

// SnapshotCmd represents the snapshot command
type SnapshotCmd struct {
	Scene          string `short:"s" help:"Path to a built scene file" default:"./scene/galaxy.json"`
	Output         string `short:"o" help:"Path for the screenshot PNG" default:"./scene/galaxy.png"`
	Width          int64  `help:"Viewport width in pixels" default:"1280"`
	Height         int64  `help:"Viewport height in pixels" default:"800"`
	ThumbnailWidth int    `help:"Also write a resized thumbnail at this width (0 disables)" default:"0"`
}

// CacheCmd represents the cache command and its subcommands
type CacheCmd struct {
	Invalidate cache.InvalidateCacheCmd `cmd:"" help:"Clear cached catalog pages"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("nebula"),
		kong.Description("Build and explore a 3D galaxy of book subject words."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("SceneOutputDir", "./scene/")
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("OverwriteFiles", false)

	// Datasette defaults
	viper.SetDefault("datasette.enabled", true)
	viper.SetDefault("datasette.dbfile", "./nebula.db")

	// Cache defaults
	viper.SetDefault("cache.dbfile", "./cache.db")
	viper.SetDefault("cache.ttl", "168h") // 7 days

	// Catalog defaults
	viper.SetDefault("catalog.baseurl", "https://gutendex.com/books")
	viper.SetDefault("catalog.maxpages", 3)

	viper.AutomaticEnv()
	if err := viper.BindEnv("catalog.baseurl", "NEBULA_CATALOG_URL"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file...")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Error("Error writing config file", "error", err)
			}
			os.Exit(0)
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	config.SetOverwriteFiles(cli.Overwrite)

	viper.Set("datasette.enabled", cli.Datasette)
	viper.Set("datasette.dbfile", cli.DatasetteDB)

	viper.Set("cache.dbfile", cli.CacheDBFile)
	viper.Set("cache.ttl", cli.CacheTTL)
}

// Run methods for each command

func (b *BuildCmd) Run() error {
	return buildGalaxy(b.Output, b.Markdown, b.JSON, b.JSONOutput, b.Preset, config.OverwriteFiles)
}

func (e *ExploreCmd) Run() error {
	return exploreGalaxy(e.Scene)
}

func (s *SnapshotCmd) Run() error {
	return snapshotScene(s.Scene, s.Output, s.Width, s.Height, s.ThumbnailWidth)
}

func initLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("NEBULA_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
