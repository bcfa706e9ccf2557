package index

import (
	"sort"
	"strings"
)

// ResolveReference maps a textual reference to the relative path of exactly
// one indexed file. Two forms are accepted: bare "#name" and
// directory-qualified ".seg1.seg2#name". Failure is an expected outcome (a
// typo, a stale reference) and is reported as ok == false, never as an error.
func (ix *Index) ResolveReference(ref string) (string, bool) {
	switch {
	case strings.HasPrefix(ref, "#"):
		return ix.resolveUnqualified(ref[1:])
	case strings.HasPrefix(ref, "."):
		dotted, name, found := strings.Cut(ref[1:], "#")
		if !found {
			return "", false
		}
		return ix.resolveQualified(dotted, name)
	}
	return "", false
}

// resolveUnqualified scans allFiles in stored scan order; the first record
// whose stripped filename equals name wins. Deliberately not alphabetic:
// scan order is the documented tiebreak for duplicate filenames.
func (ix *Index) resolveUnqualified(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, rec := range ix.files {
		if StrippedName(rec.RelativePath) == name {
			return rec.RelativePath, true
		}
	}
	return "", false
}

// resolveQualified descends the tree one segment at a time, then searches the
// final directory's direct children only. Qualification exists to
// disambiguate, so it must not recurse back into subdirectories.
func (ix *Index) resolveQualified(dotted, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	node, ok := ix.descend(strings.Split(dotted, "."))
	if !ok {
		return "", false
	}

	// Sorted child names keep the result deterministic when two extensions
	// strip to the same name within one directory.
	names := make([]string, 0, len(ix.dirs[node].children))
	for child := range ix.dirs[node].children {
		names = append(names, child)
	}
	sort.Strings(names)

	for _, child := range names {
		ent := ix.dirs[node].children[child]
		if ent.kind != entryFile {
			continue
		}
		rec := ix.files[ent.file]
		if StrippedName(rec.RelativePath) == name {
			return rec.RelativePath, true
		}
	}
	return "", false
}

// FilesInFolder lists the stripped filenames of the direct file children of a
// dotted directory path (".src.components" or "src.components"), sorted
// ascending. An unknown path yields an empty result.
func (ix *Index) FilesInFolder(dotted string) []string {
	dotted = strings.TrimPrefix(dotted, ".")
	segs := []string{}
	if dotted != "" {
		segs = strings.Split(dotted, ".")
	}
	node, ok := ix.descend(segs)
	if !ok {
		return nil
	}

	var out []string
	for _, ent := range ix.dirs[node].children {
		if ent.kind == entryFile {
			out = append(out, StrippedName(ix.files[ent.file].RelativePath))
		}
	}
	sort.Strings(out)
	return out
}
