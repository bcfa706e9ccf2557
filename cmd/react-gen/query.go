package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <line> [cursor]",
	Short: "List completions for the token ending at the cursor",
	Long:  "Prints the legal completions for the token ending exactly at the cursor offset (default: end of line). Recognized tokens are @template, #filename and .folder references.",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	line := args[0]
	cursor := len(line)
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("cursor must be an integer: %q", args[1])
		}
		cursor = n
	}

	engine, _, _, err := newEngine(cmd.Context())
	if err != nil {
		return err
	}
	return outputStrings(engine.Complete(line, cursor))
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <reference>",
	Short: "Resolve a #file or .folder#file reference to its path",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	ref := args[0]

	engine, _, _, err := newEngine(cmd.Context())
	if err != nil {
		return err
	}

	path, ok := engine.ResolveReference(ref)
	if !ok {
		if hints := engine.Complete(ref, len(ref)); len(hints) > 0 {
			return fmt.Errorf("could not resolve %q (did you mean %s?)", ref, hints[0])
		}
		return fmt.Errorf("could not resolve %q", ref)
	}

	if flagFormat == "json" {
		return outputJSON(map[string]string{"reference": ref, "path": path})
	}
	fmt.Println(path)
	return nil
}

var lsCmd = &cobra.Command{
	Use:   "ls <folder>",
	Short: "List files directly inside a dotted folder path",
	Long:  "Lists the stripped filenames directly inside a dotted folder path such as .src.components. Subdirectories are not recursed into.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLs,
}

func runLs(cmd *cobra.Command, args []string) error {
	engine, _, _, err := newEngine(cmd.Context())
	if err != nil {
		return err
	}
	return outputStrings(engine.FilesInFolder(args[0]))
}
