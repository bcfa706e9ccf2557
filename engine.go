package reactgen

import (
	"context"
	"fmt"
	"path"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/thisprojects/react-gen/internal/catalog"
	"github.com/thisprojects/react-gen/internal/config"
	"github.com/thisprojects/react-gen/internal/extract"
	"github.com/thisprojects/react-gen/internal/index"
	"github.com/thisprojects/react-gen/internal/scanner"
	"github.com/thisprojects/react-gen/internal/templates"
)

// Extractor turns raw source text into exported identifiers and imported
// module specifiers. Implementations must never fail: unparseable input
// degrades to an empty result, so one malformed file cannot abort a build.
type Extractor func(ctx context.Context, content []byte, path string) extract.Result

// Engine orchestrates the react-gen pipeline: file discovery, export and
// import extraction, index construction, and query access. Queries run
// against the current immutable Index; a rebuild replaces it with one atomic
// pointer swap, so unlimited concurrent queries never observe a half-built
// index.
type Engine struct {
	rootPath  string
	cfg       *config.Config
	scanner   *scanner.Scanner
	catalog   *catalog.Catalog
	templates *templates.Runtime
	extract   Extractor

	current atomic.Pointer[index.Index]
}

// Option configures an Engine.
type Option func(*Engine)

// WithCatalog replaces the default template catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(e *Engine) {
		e.catalog = c
	}
}

// WithExtractor replaces the tree-sitter extractor, which tests use to feed
// canned exports and imports.
func WithExtractor(fn Extractor) Option {
	return func(e *Engine) {
		e.extract = fn
	}
}

// WithTemplates replaces the prompt-script runtime.
func WithTemplates(rt *templates.Runtime) Option {
	return func(e *Engine) {
		e.templates = rt
	}
}

// New creates an Engine for the project at rootPath. A nil cfg uses the
// defaults.
func New(rootPath string, cfg *config.Config, opts ...Option) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	e := &Engine{
		rootPath:  rootPath,
		cfg:       cfg,
		scanner:   scanner.New(cfg.Scan.Roots, cfg.Scan.Exclude),
		catalog:   catalog.Default(),
		templates: templates.NewRuntime(),
		extract:   extract.Source,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Current returns the index queries run against, or nil before the first
// successful build or load.
func (e *Engine) Current() *index.Index {
	return e.current.Load()
}

// Catalog returns the engine's template catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Rebuild scans the project, extracts per-file metadata on a worker pool,
// folds the records into one Index, and swaps it in. Any unreadable file
// fails the whole build and leaves the previous Index current.
func (e *Engine) Rebuild(ctx context.Context) (*index.Index, error) {
	candidates, err := e.scanner.Discover(e.rootPath)
	if err != nil {
		return nil, fmt.Errorf("discover files: %w", err)
	}

	records := make([]index.FileRecord, len(candidates))
	errs := make([]error, len(candidates))

	numWorkers := min(runtime.NumCPU(), len(candidates))
	workCh := make(chan int, len(candidates))
	for i := range candidates {
		workCh <- i
	}
	close(workCh)

	// Each worker owns distinct result slots, so the fold below is the only
	// synchronization point and scan order is preserved.
	var wg sync.WaitGroup
	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range workCh {
				records[i], errs[i] = e.classify(ctx, candidates[i])
			}
		}()
	}
	wg.Wait()

	var failed []error
	for _, err := range errs {
		if err != nil {
			failed = append(failed, err)
		}
	}
	if len(failed) > 0 {
		return nil, fmt.Errorf("scan had %d error(s): %w", len(failed), failed[0])
	}

	ix := index.Build(e.rootPath, records)
	e.current.Store(ix)
	return ix, nil
}

// classify loads one candidate, runs extraction, and applies the category
// rule. Extraction cannot fail; a read error is fatal to the whole build.
func (e *Engine) classify(ctx context.Context, c scanner.Candidate) (index.FileRecord, error) {
	f, err := scanner.Load(c)
	if err != nil {
		return index.FileRecord{}, err
	}
	res := e.extract(ctx, f.Content, c.RelativePath)

	exports := res.Exports
	if exports == nil {
		exports = []string{}
	}
	imports := res.Imports
	if imports == nil {
		imports = []string{}
	}

	return index.FileRecord{
		RelativePath: c.RelativePath,
		AbsolutePath: c.AbsolutePath,
		LineCount:    f.LineCount,
		Category:     index.Classify(path.Base(c.RelativePath), exports),
		Exports:      exports,
		Imports:      imports,
		ReverseUsage: []string{},
	}, nil
}

// Load swaps in a cached index when one exists and is younger than the
// configured staleness window, rebuilding (and refreshing the cache)
// otherwise.
func (e *Engine) Load(ctx context.Context) (*index.Index, error) {
	cachePath := e.cfg.CachePath(e.rootPath)
	if ix, err := index.Load(cachePath); err == nil && ix.Fresh(e.cfg.Staleness()) {
		e.current.Store(ix)
		return ix, nil
	}

	ix, err := e.Rebuild(ctx)
	if err != nil {
		return nil, err
	}
	if err := index.Save(ix, cachePath); err != nil {
		return nil, fmt.Errorf("save index cache: %w", err)
	}
	return ix, nil
}

// BuildPrompt resolves a reference, looks up the requested template, and
// renders the generation prompt from the resolved file's context. The
// returned relPath names the file generation will target. An empty
// templateRef falls back to the bare component template.
func (e *Engine) BuildPrompt(ctx context.Context, ref, templateRef string) (prompt, relPath string, err error) {
	ix := e.current.Load()
	if ix == nil {
		return "", "", fmt.Errorf("no index loaded")
	}

	relPath, ok := ix.ResolveReference(ref)
	if !ok {
		return "", "", fmt.Errorf("could not resolve %q", ref)
	}
	rec, _ := ix.File(relPath)

	if templateRef == "" {
		templateRef = "component"
	}
	tmpl, ok := e.catalog.Lookup(templateRef)
	if !ok {
		return "", "", fmt.Errorf("unknown template %q", templateRef)
	}

	prompt, err = e.templates.Render(ctx, tmpl.Family, templates.Context{
		ComponentName: index.StrippedName(relPath),
		Variant:       tmpl.Variant,
		RelativePath:  relPath,
		Exports:       rec.Exports,
		Imports:       rec.Imports,
		Siblings:      ix.FilesInFolder(folderOf(relPath)),
	})
	if err != nil {
		return "", "", err
	}
	return prompt, relPath, nil
}

// folderOf converts a relative path's directory into the dotted folder form.
func folderOf(relPath string) string {
	dir := path.Dir(relPath)
	if dir == "." {
		return ""
	}
	return strings.ReplaceAll(dir, "/", ".")
}
