// Package index holds the immutable project index: a directory arena plus
// flat lookup lists, built once per scan and never mutated afterward. All
// query operations are pure reads, so any number of goroutines may share one
// Index without coordination.
package index

import (
	"path"
	"strings"
	"time"
)

// FormatVersion identifies the serialized index document layout.
const FormatVersion = 1

// Category classifies an indexed file.
type Category string

const (
	CategoryComponent Category = "component"
	CategoryUtility   Category = "utility"
	CategoryTest      Category = "test"
)

// FileRecord is the per-file metadata captured during a scan. RelativePath is
// the unique key, forward-slash separated. Exports and Imports keep source
// order; duplicate export names are allowed. ReverseUsage is reserved for
// referring-path tracking and stays empty for now.
type FileRecord struct {
	RelativePath string   `json:"relativePath"`
	AbsolutePath string   `json:"absolutePath"`
	LineCount    int      `json:"lineCount"`
	Category     Category `json:"category"`
	Exports      []string `json:"exports"`
	Imports      []string `json:"imports"`
	ReverseUsage []string `json:"reverseUsage"`
}

// Classify applies the category rule: a ".test." or ".spec." segment in the
// filename wins regardless of exports, then non-empty exports means
// component, else utility.
func Classify(filename string, exports []string) Category {
	if strings.Contains(filename, ".test.") || strings.Contains(filename, ".spec.") {
		return CategoryTest
	}
	if len(exports) > 0 {
		return CategoryComponent
	}
	return CategoryUtility
}

// StrippedName returns the final path segment with its extension removed.
func StrippedName(relPath string) string {
	base := path.Base(relPath)
	return strings.TrimSuffix(base, path.Ext(base))
}

// nodeID indexes the directory arena. The root directory is always node 0.
type nodeID int32

type entryKind uint8

const (
	entryDir entryKind = iota
	entryFile
)

// entry is the tagged union for one child of a directory node: either a
// directory in the arena or a file in the flat record table.
type entry struct {
	kind entryKind
	dir  nodeID // valid when kind == entryDir
	file int32  // index into files when kind == entryFile
}

type dirNode struct {
	children map[string]entry
}

// Index is the complete representation of one scan: the directory tree plus
// flat lookup lists. AllFiles preserves scan order; AllExportedNames is the
// scan-order concatenation of exports from component files.
type Index struct {
	BuiltAt          time.Time
	RootPath         string
	AllFiles         []string
	AllExportedNames []string

	dirs   []dirNode
	files  []FileRecord
	byPath map[string]int32
}

// Build folds per-file records, in scan order, into one Index. RelativePath
// uniqueness is the caller's guarantee, so the walk never needs to
// deduplicate: it creates missing directory nodes and attaches each record
// under its final segment.
func Build(rootPath string, records []FileRecord) *Index {
	ix := &Index{
		BuiltAt:          time.Now(),
		RootPath:         rootPath,
		AllFiles:         make([]string, 0, len(records)),
		AllExportedNames: []string{},
		dirs:             []dirNode{{children: make(map[string]entry)}},
		files:            make([]FileRecord, 0, len(records)),
		byPath:           make(map[string]int32, len(records)),
	}

	for _, rec := range records {
		segs := strings.Split(rec.RelativePath, "/")
		node := nodeID(0)
		for _, seg := range segs[:len(segs)-1] {
			node = ix.childDir(node, seg)
		}

		fileIdx := int32(len(ix.files))
		ix.files = append(ix.files, rec)
		ix.byPath[rec.RelativePath] = fileIdx
		ix.dirs[node].children[segs[len(segs)-1]] = entry{kind: entryFile, file: fileIdx}

		ix.AllFiles = append(ix.AllFiles, rec.RelativePath)
		if rec.Category == CategoryComponent {
			ix.AllExportedNames = append(ix.AllExportedNames, rec.Exports...)
		}
	}
	return ix
}

// childDir returns the directory child of node named seg, creating it in the
// arena if absent.
func (ix *Index) childDir(node nodeID, seg string) nodeID {
	if ent, ok := ix.dirs[node].children[seg]; ok && ent.kind == entryDir {
		return ent.dir
	}
	id := nodeID(len(ix.dirs))
	ix.dirs = append(ix.dirs, dirNode{children: make(map[string]entry)})
	ix.dirs[node].children[seg] = entry{kind: entryDir, dir: id}
	return id
}

// File returns a copy of the record stored under relPath.
func (ix *Index) File(relPath string) (FileRecord, bool) {
	i, ok := ix.byPath[relPath]
	if !ok {
		return FileRecord{}, false
	}
	return ix.files[i], true
}

// FileCount reports how many files the scan captured.
func (ix *Index) FileCount() int {
	return len(ix.files)
}

// Fresh reports whether the index was built within the staleness window.
func (ix *Index) Fresh(window time.Duration) bool {
	return time.Since(ix.BuiltAt) < window
}

// descend walks one directory node per dotted segment from the tree root.
// A missing segment, or a segment naming a file, fails the walk.
func (ix *Index) descend(segs []string) (nodeID, bool) {
	node := nodeID(0)
	for _, seg := range segs {
		ent, ok := ix.dirs[node].children[seg]
		if !ok || ent.kind != entryDir {
			return 0, false
		}
		node = ent.dir
	}
	return node, true
}
