package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	reactgen "github.com/thisprojects/react-gen"
	"github.com/thisprojects/react-gen/internal/config"
	"github.com/thisprojects/react-gen/internal/generate"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive session with tab completion over the index",
	Long:  "Starts a line-editing loop. Tab completes @template, #filename and .folder tokens; a reference on its own line resolves it, and \"gen <reference> [@template]\" generates a component.",
	Args:  cobra.NoArgs,
	RunE:  runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	engine, cfg, root, err := newEngine(ctx)
	if err != nil {
		return err
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(input string) []string {
		head, comps := engine.CompleteLine(input, len(input))
		out := make([]string, len(comps))
		for i, c := range comps {
			out[i] = head + c
		}
		return out
	})

	historyFile := filepath.Join(root, ".react-gen", "chat_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer saveChatHistory(line, historyFile)

	fmt.Println("react-gen chat: tab completes @, # and . tokens; \"help\" lists commands.")

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			// Ctrl-C, Ctrl-D or a closed terminal ends the session.
			return nil
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch {
		case input == "quit" || input == "exit":
			return nil
		case input == "help":
			printChatHelp()
		case input == "reindex":
			start := time.Now()
			ix, err := engine.Rebuild(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				continue
			}
			fmt.Printf("Indexed %d files in %s\n", ix.FileCount(), time.Since(start).Round(time.Millisecond))
		case strings.HasPrefix(input, "ls "):
			for _, name := range engine.FilesInFolder(strings.TrimSpace(input[3:])) {
				fmt.Println(name)
			}
		case strings.HasPrefix(input, "gen "):
			chatGenerate(ctx, engine, cfg, root, strings.Fields(input[4:]))
		case strings.HasPrefix(input, "#") || strings.HasPrefix(input, "."):
			chatResolve(engine, input)
		default:
			fmt.Printf("Unrecognized input %q; \"help\" lists commands.\n", input)
		}
	}
}

func chatResolve(engine *reactgen.Engine, ref string) {
	path, ok := engine.ResolveReference(ref)
	if !ok {
		fmt.Printf("could not resolve %q", ref)
		if hints := engine.Complete(ref, len(ref)); len(hints) > 0 {
			fmt.Printf(" (did you mean %s?)", hints[0])
		}
		fmt.Println()
		return
	}
	fmt.Println(path)
}

func chatGenerate(ctx context.Context, engine *reactgen.Engine, cfg *config.Config, root string, fields []string) {
	if len(fields) == 0 {
		fmt.Println("usage: gen <reference> [@template]")
		return
	}
	ref := fields[0]
	template := ""
	if len(fields) > 1 {
		template = fields[1]
	}

	prompt, relPath, err := engine.BuildPrompt(ctx, ref, template)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return
	}

	client := generate.NewClient(cfg.Generate.BaseURL, cfg.Generate.Model, cfg.Timeout())
	start := time.Now()
	output, err := client.Generate(ctx, prompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Generated %s in %s\n", relPath, time.Since(start).Round(time.Millisecond))

	if template == "" {
		template = "component"
	}
	if err := recordGeneration(cfg.HistoryPath(root), ref, template, client.Model(), prompt, output); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", err)
	}

	fmt.Println(output)
}

func printChatHelp() {
	fmt.Println(`Commands:
  #Name                 resolve an unqualified reference
  .src.components#Name  resolve a qualified reference
  ls .src.components    list files in a folder
  gen <ref> [@template] generate a component for a resolved reference
  reindex               rescan the project
  quit                  leave the session`)
}

func saveChatHistory(line *liner.State, path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	if f, err := os.Create(path); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}
