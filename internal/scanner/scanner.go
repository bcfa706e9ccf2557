// Package scanner discovers candidate component sources below a project's
// conventional subtree roots and loads their raw text.
package scanner

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultRoots are the conventional subtrees scanned below the project root.
var DefaultRoots = []string{"src", "app", "components", "pages", "lib"}

// DefaultExclude names build and dependency directories skipped at any depth.
var DefaultExclude = []string{"node_modules", "dist", "build", "coverage", ".next", "out"}

// sourceExtensions are the two accepted component source extensions.
var sourceExtensions = map[string]bool{
	".tsx": true,
	".jsx": true,
}

// Candidate is one file discovered below the configured roots.
type Candidate struct {
	RelativePath string // forward-slash separated, relative to the project root
	AbsolutePath string
}

// File is a loaded candidate with its raw text. LineCount counts line
// terminator splits, so an empty file is one line.
type File struct {
	Candidate
	Content   []byte
	LineCount int
}

// Scanner walks a fixed set of subtree roots. The zero value is not usable;
// construct with New.
type Scanner struct {
	roots   []string
	exclude map[string]bool
}

// New builds a Scanner. Nil roots or exclude fall back to the defaults.
func New(roots, exclude []string) *Scanner {
	if roots == nil {
		roots = DefaultRoots
	}
	if exclude == nil {
		exclude = DefaultExclude
	}
	ex := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		ex[name] = true
	}
	return &Scanner{roots: roots, exclude: ex}
}

// Discover walks the configured roots below projectRoot and returns every
// file with an accepted extension, in deterministic walk order. Roots that do
// not exist are skipped; any other walk error fails the whole scan.
func (s *Scanner) Discover(projectRoot string) ([]Candidate, error) {
	var out []Candidate
	for _, root := range s.roots {
		dir := filepath.Join(projectRoot, root)
		info, err := os.Stat(dir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", dir, err)
		}
		if !info.IsDir() {
			continue
		}

		err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				name := d.Name()
				if p != dir && (strings.HasPrefix(name, ".") || s.exclude[name]) {
					return filepath.SkipDir
				}
				return nil
			}
			if !sourceExtensions[strings.ToLower(filepath.Ext(p))] {
				return nil
			}
			rel, err := filepath.Rel(projectRoot, p)
			if err != nil {
				return err
			}
			out = append(out, Candidate{
				RelativePath: filepath.ToSlash(rel),
				AbsolutePath: p,
			})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", dir, err)
		}
	}
	return out, nil
}

// Load reads a candidate's content. An unreadable file is an error the
// caller must treat as fatal to the whole scan; there are no partial results
// at this layer.
func Load(c Candidate) (File, error) {
	content, err := os.ReadFile(c.AbsolutePath)
	if err != nil {
		return File{}, fmt.Errorf("read %s: %w", c.RelativePath, err)
	}
	return File{
		Candidate: c,
		Content:   content,
		LineCount: CountLines(content),
	}, nil
}

// CountLines splits on line terminators: N newlines mean N+1 lines, and an
// empty file counts as 1 line by definition.
func CountLines(content []byte) int {
	return bytes.Count(content, []byte{'\n'}) + 1
}
