package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	reactgen "github.com/thisprojects/react-gen"
	"github.com/thisprojects/react-gen/internal/config"
	"github.com/thisprojects/react-gen/internal/index"
)

var (
	flagRoot   string
	flagConfig string
	flagFormat string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "react-gen",
	Short:         "Index React component trees and resolve interactive references",
	Long:          "react-gen scans a project's component sources, builds a queryable index, and resolves #file, .folder#file and @template references for completion and generation.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	// No Run; prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", ".", "project root to scan")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: react-gen.toml in the project root)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format: json|text")

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(chatCmd)
}

// resolveRoot returns the absolute project root from --root.
func resolveRoot() (string, error) {
	abs, err := filepath.Abs(flagRoot)
	if err != nil {
		return "", fmt.Errorf("resolving root %q: %w", flagRoot, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project root not found: %s", abs)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", abs)
	}
	return abs, nil
}

// loadConfig loads --config when given, else the project's react-gen.toml,
// else the defaults.
func loadConfig(root string) (*config.Config, error) {
	if flagConfig != "" {
		return config.Load(flagConfig)
	}
	return config.LoadProject(root)
}

// newEngine builds an Engine and populates its index from the cache when
// fresh, rebuilding otherwise.
func newEngine(ctx context.Context) (*reactgen.Engine, *config.Config, string, error) {
	root, err := resolveRoot()
	if err != nil {
		return nil, nil, "", err
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return nil, nil, "", err
	}
	engine := reactgen.New(root, cfg)
	if _, err := engine.Load(ctx); err != nil {
		return nil, nil, "", err
	}
	return engine, cfg, root, nil
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Scan the project and write a fresh index",
	Long:  "Walks the configured subtree roots, extracts exports and imports from every component source, and writes the index document to the cache path.",
	Args:  cobra.NoArgs,
	RunE:  runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	start := time.Now()

	root, err := resolveRoot()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	engine := reactgen.New(root, cfg)
	ix, err := engine.Rebuild(cmd.Context())
	if err != nil {
		return fmt.Errorf("indexing: %w", err)
	}
	cachePath := cfg.CachePath(root)
	if err := index.Save(ix, cachePath); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Indexed %d files in %s\n",
		ix.FileCount(), time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(os.Stderr, "Index: %s\n", cachePath)
	return nil
}
