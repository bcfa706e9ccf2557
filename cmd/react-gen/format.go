package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}

// outputStrings prints a string list: one per line as text, a JSON array
// otherwise. An empty list prints [] in JSON and nothing in text.
func outputStrings(values []string) error {
	if flagFormat == "json" {
		if values == nil {
			values = []string{}
		}
		return outputJSON(values)
	}
	for _, v := range values {
		fmt.Println(v)
	}
	return nil
}

// outputJSON prints any value as indented JSON on stdout.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
