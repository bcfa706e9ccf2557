package index

import (
	"encoding/json"
	"fmt"
	"time"
)

// document is the persisted index layout. Field names and nesting must
// round-trip exactly; external consumers read builtAt against their own
// staleness window before loading the rest verbatim.
type document struct {
	FormatVersion    int             `json:"formatVersion"`
	BuiltAt          time.Time       `json:"builtAt"`
	RootPath         string          `json:"rootPath"`
	Tree             json.RawMessage `json:"tree"`
	AllFiles         []string        `json:"allFiles"`
	AllExportedNames []string        `json:"allExportedNames"`
}

// MarshalJSON serializes the arena back into the nested directory-object
// form: a directory is a plain object of child names, a file is its
// FileRecord object. The relativePath field is the only file/directory
// discriminant on the wire.
func (ix *Index) MarshalJSON() ([]byte, error) {
	tree, err := ix.marshalDir(0)
	if err != nil {
		return nil, err
	}
	return json.Marshal(document{
		FormatVersion:    FormatVersion,
		BuiltAt:          ix.BuiltAt,
		RootPath:         ix.RootPath,
		Tree:             tree,
		AllFiles:         ix.AllFiles,
		AllExportedNames: ix.AllExportedNames,
	})
}

func (ix *Index) marshalDir(id nodeID) (json.RawMessage, error) {
	// encoding/json sorts map keys, so sibling order is stable on disk.
	out := make(map[string]json.RawMessage, len(ix.dirs[id].children))
	for name, ent := range ix.dirs[id].children {
		var (
			raw json.RawMessage
			err error
		)
		if ent.kind == entryFile {
			raw, err = json.Marshal(ix.files[ent.file])
		} else {
			raw, err = ix.marshalDir(ent.dir)
		}
		if err != nil {
			return nil, err
		}
		out[name] = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON loads a persisted document and rebuilds the arena. The tree
// is walked collecting FileRecords by relativePath; allFiles then dictates
// the rebuild order so scan order survives the round trip.
func (ix *Index) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode index document: %w", err)
	}
	if doc.FormatVersion != FormatVersion {
		return fmt.Errorf("unsupported index format version %d", doc.FormatVersion)
	}

	byPath := make(map[string]FileRecord)
	if err := collectRecords(doc.Tree, byPath); err != nil {
		return err
	}
	if len(byPath) != len(doc.AllFiles) {
		return fmt.Errorf("index document lists %d files but tree holds %d",
			len(doc.AllFiles), len(byPath))
	}

	records := make([]FileRecord, 0, len(doc.AllFiles))
	for _, p := range doc.AllFiles {
		rec, ok := byPath[p]
		if !ok {
			return fmt.Errorf("index document file %q missing from tree", p)
		}
		records = append(records, rec)
	}

	rebuilt := Build(doc.RootPath, records)
	rebuilt.BuiltAt = doc.BuiltAt
	rebuilt.AllExportedNames = doc.AllExportedNames
	if rebuilt.AllExportedNames == nil {
		rebuilt.AllExportedNames = []string{}
	}
	*ix = *rebuilt
	return nil
}

// collectRecords walks a serialized directory object. A child object carrying
// a relativePath key is a FileRecord; anything else is a nested directory.
func collectRecords(raw json.RawMessage, byPath map[string]FileRecord) error {
	var children map[string]json.RawMessage
	if err := json.Unmarshal(raw, &children); err != nil {
		return fmt.Errorf("decode tree node: %w", err)
	}
	for name, child := range children {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(child, &probe); err != nil {
			return fmt.Errorf("decode tree entry %q: %w", name, err)
		}
		if _, isFile := probe["relativePath"]; isFile {
			var rec FileRecord
			if err := json.Unmarshal(child, &rec); err != nil {
				return fmt.Errorf("decode file record %q: %w", name, err)
			}
			byPath[rec.RelativePath] = rec
			continue
		}
		if err := collectRecords(child, byPath); err != nil {
			return err
		}
	}
	return nil
}
