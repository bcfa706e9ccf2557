// Package templates renders generation prompts from embedded Risor scripts,
// one script per template family. Scripts receive the resolved file's context
// as globals and return the prompt as their final expression.
package templates

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/risor-io/risor"
	"github.com/risor-io/risor/object"
)

//go:embed scripts/*.risor
var scriptsFS embed.FS

// Context carries everything a prompt script may reference.
type Context struct {
	ComponentName string
	Variant       string
	RelativePath  string
	Exports       []string
	Imports       []string
	Siblings      []string
}

// Runtime evaluates prompt scripts. The zero value loads from the embedded
// filesystem; WithFS swaps in another source, which tests use.
type Runtime struct {
	fsys fs.FS
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithFS loads scripts from fsys instead of the embedded set.
func WithFS(fsys fs.FS) RuntimeOption {
	return func(r *Runtime) {
		r.fsys = fsys
	}
}

// NewRuntime creates a Runtime over the embedded scripts.
func NewRuntime(opts ...RuntimeOption) *Runtime {
	r := &Runtime{fsys: scriptsFS}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render evaluates the script for a template family and returns the prompt it
// produces. An unknown family or a script that does not return a string is an
// error.
func (r *Runtime) Render(ctx context.Context, family string, tc Context) (string, error) {
	src, err := fs.ReadFile(r.fsys, "scripts/"+family+".risor")
	if err != nil {
		return "", fmt.Errorf("templates: unknown template family %q", family)
	}

	// Sequences are pre-joined Go-side so scripts deal only in strings.
	opts := []risor.Option{
		risor.WithGlobal("component_name", tc.ComponentName),
		risor.WithGlobal("variant", tc.Variant),
		risor.WithGlobal("relative_path", tc.RelativePath),
		risor.WithGlobal("exports", strings.Join(tc.Exports, ", ")),
		risor.WithGlobal("imports", strings.Join(tc.Imports, ", ")),
		risor.WithGlobal("siblings", strings.Join(tc.Siblings, ", ")),
	}

	result, err := risor.Eval(ctx, string(src), opts...)
	if err != nil {
		return "", fmt.Errorf("templates: script %s: %w", family, err)
	}
	str, ok := result.(*object.String)
	if !ok {
		return "", fmt.Errorf("templates: script %s returned %s, want string", family, result.Type())
	}
	return str.Value(), nil
}

// Families lists the script families available in the Runtime's filesystem.
func (r *Runtime) Families() ([]string, error) {
	entries, err := fs.ReadDir(r.fsys, "scripts")
	if err != nil {
		return nil, fmt.Errorf("templates: list scripts: %w", err)
	}
	var out []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".risor"); ok && !e.IsDir() {
			out = append(out, name)
		}
	}
	return out, nil
}
