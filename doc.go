// Package reactgen indexes a tree of React component sources into a
// structured map and answers interactive queries against it: token
// completion, reference resolution, and folder listing. A resolved reference
// can then drive prompt-scripted component generation.
//
// # Pipeline
//
// One build pass per invocation:
//
//  1. Scan: walk the conventional subtree roots (src, app, components,
//     pages, lib) for .tsx and .jsx files, skipping build and dependency
//     directories at any depth.
//
//  2. Classify: parse each file with tree-sitter and extract its exported
//     identifiers and imported module specifiers. Extraction never fails
//     (unparseable input degrades to empty sequences) and each file is
//     categorized as component, utility, or test.
//
//  3. Build: fold the per-file records, in scan order, into one immutable
//     Index (directory tree plus flat lookup lists), then swap it in with a
//     single atomic pointer store.
//
// # Usage
//
// Create an Engine, build (or load) an index, and query:
//
//	e := reactgen.New("path/to/project", nil)
//
//	ctx := context.Background()
//	_, err := e.Load(ctx) // cached index when fresh, rebuild otherwise
//
//	comps := e.Complete("#Log", 4)
//	path, ok := e.ResolveReference(".src.components#Button")
//	files := e.FilesInFolder(".src.components")
//
// # References
//
// Three reference forms are recognized on a command line:
//
//   - #Name: unqualified, the first file in scan order whose stripped
//     filename matches.
//   - .src.components#Name: directory-qualified, exact descent, direct
//     children only.
//   - @template[:variant]: a generation template from the fixed catalog.
//
// # Generation
//
// [Engine.BuildPrompt] resolves a reference, renders the template family's
// Risor prompt script with the file's context, and returns the prompt for the
// generation client in internal/generate. Runs are recorded by
// internal/history.
package reactgen
