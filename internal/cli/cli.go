// Package cli implements the relgraph command-line interface.
//
// This package provides commands for canonicalizing algebraic graph files,
// rendering them with Graphviz, inspecting their structure, and managing
// the render cache. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - canon: Reduce a graph expression file to its canonical relation
//   - render: Generate DOT, SVG, or PNG visualizations
//   - stats: Summarize a graph (kind, order, size, sources, sinks)
//   - cache: Manage the render cache
//
// # File format
//
// Commands read the tagged-tree JSON format of pkg/graphio with string
// vertex values. Binary (msgpack) input is detected by the .mpk extension.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/relgraph/relgraph/pkg/buildinfo"
	"github.com/relgraph/relgraph/pkg/cache"
	"github.com/relgraph/relgraph/pkg/graph"
	"github.com/relgraph/relgraph/pkg/graphio"
)

// appName is the application name used for directories and display.
const appName = "relgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and configuration
// loaded from the usual locations (see LoadConfig).
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: LoadConfig(""),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "relgraph canonicalizes and renders algebraic graphs",
		Long:         `relgraph is a CLI for the relgraph algebraic graph engine: it reduces graph expression files to their canonical relations, renders them with Graphviz, and reports structural summaries.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.canonCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// newCache builds the render cache, honoring the config and --no-cache.
func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache || c.Config.Cache.Disabled {
		return cache.NewNullCache()
	}
	dir := c.Config.Cache.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache()
		}
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("cache unavailable, continuing without", "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// readGraph loads a graph file, choosing the codec by extension.
func readGraph(path string) (*graph.Graph[string], error) {
	if strings.EqualFold(filepath.Ext(path), ".mpk") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return graphio.UnmarshalBinary[string](data)
	}
	return graphio.ReadFile[string](path)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/relgraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
