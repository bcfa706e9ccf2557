package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/thisprojects/react-gen/internal/generate"
	"github.com/thisprojects/react-gen/internal/history"
)

var (
	flagDryRun   bool
	flagTemplate string
)

var generateCmd = &cobra.Command{
	Use:   "generate <reference>",
	Short: "Generate a component for a resolved reference",
	Long:  "Resolves the reference, renders the template's prompt script against the file's context, sends it to the configured generation endpoint, and records the run.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagTemplate, "template", "", "template reference, e.g. @component:functional (default: @component)")
	generateCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "print the rendered prompt instead of calling the endpoint")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	ref := args[0]

	engine, cfg, root, err := newEngine(ctx)
	if err != nil {
		return err
	}

	prompt, relPath, err := engine.BuildPrompt(ctx, ref, flagTemplate)
	if err != nil {
		return err
	}

	if flagDryRun {
		fmt.Println(prompt)
		return nil
	}

	client := generate.NewClient(cfg.Generate.BaseURL, cfg.Generate.Model, cfg.Timeout())

	start := time.Now()
	output, err := client.Generate(ctx, prompt)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Generated %s in %s\n", relPath, time.Since(start).Round(time.Millisecond))

	template := flagTemplate
	if template == "" {
		template = "component"
	}
	if err := recordGeneration(cfg.HistoryPath(root), ref, template, client.Model(), prompt, output); err != nil {
		// History is best effort; the generated source still goes to stdout.
		fmt.Fprintf(os.Stderr, "Warning: %s\n", err)
	}

	fmt.Println(output)
	return nil
}

func recordGeneration(dbPath, ref, template, model, prompt, output string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}
	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Migrate(); err != nil {
		return err
	}
	_, err = store.Insert(&history.Generation{
		Reference: ref,
		Template:  template,
		Model:     model,
		Prompt:    prompt,
		Output:    output,
	})
	return err
}

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent generation runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "maximum runs to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.HistoryPath(root))
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Migrate(); err != nil {
		return err
	}

	runs, err := store.Recent(flagHistoryLimit)
	if err != nil {
		return err
	}

	if flagFormat == "json" {
		return outputJSON(runs)
	}
	for _, g := range runs {
		fmt.Printf("%s  %-24s %-20s %s\n",
			g.CreatedAt.Format("2006-01-02 15:04"), g.Reference, g.Template, g.Model)
	}
	return nil
}
