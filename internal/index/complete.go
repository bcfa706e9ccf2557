package index

import (
	"sort"
	"strings"
)

// Character classes for the three token kinds. A token is the maximal run of
// class characters ending exactly at the cursor.

func isTemplateChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == ':' || c == '-'
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '_' || c == '-'
}

func isPathChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '.' || c == '_' || c == '/' || c == '-'
}

// Complete returns the sorted completions for the token ending exactly at
// cursor in line, or an empty result when no recognized token ends there.
// templates is the fixed @-catalog. Trigger precedence is @, then #, then .;
// only the first trigger whose token matches is evaluated.
func (ix *Index) Complete(line string, cursor int, templates []string) []string {
	_, out := ix.CompleteAt(line, cursor, templates)
	return out
}

// CompleteAt is Complete plus the byte offset of the token's trigger
// character, which line editors need to splice a chosen completion back into
// the input. anchor is -1 when no token was recognized.
func (ix *Index) CompleteAt(line string, cursor int, templates []string) (anchor int, completions []string) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(line) {
		cursor = len(line)
	}
	text := line[:cursor]

	if token, at, ok := tokenAt(text, '@', isTemplateChar); ok {
		return at, completeTemplates(token, templates)
	}
	if token, at, ok := tokenAt(text, '#', isNameChar); ok {
		return at, ix.completeFilenames(token)
	}
	if token, at, ok := tokenAt(text, '.', isPathChar); ok {
		return at, ix.completeFolders(token)
	}
	return -1, nil
}

// tokenAt extracts the token for one trigger: the maximal run of class
// characters before the cursor, anchored by the trigger character. When the
// trigger itself belongs to the class (the "." token), the run swallows the
// trigger, so the anchor is the run's leading character; otherwise the anchor
// is the character immediately before the run.
func tokenAt(text string, trigger byte, class func(byte) bool) (token string, anchor int, ok bool) {
	start := len(text)
	for start > 0 && class(text[start-1]) {
		start--
	}
	if class(trigger) {
		if start < len(text) && text[start] == trigger {
			return text[start+1:], start, true
		}
		return "", -1, false
	}
	if start > 0 && text[start-1] == trigger {
		return text[start:], start - 1, true
	}
	return "", -1, false
}

// completeTemplates matches catalog entries by prefix, re-prefixed with "@".
func completeTemplates(token string, templates []string) []string {
	var out []string
	for _, t := range templates {
		if strings.HasPrefix(t, token) {
			out = append(out, "@"+t)
		}
	}
	sort.Strings(out)
	return out
}

// completeFilenames matches every indexed file whose lower-cased stripped
// filename contains the token as a substring. Results are deduplicated and
// sorted; duplicates arise when the same filename exists in two directories.
func (ix *Index) completeFilenames(token string) []string {
	needle := strings.ToLower(token)
	seen := make(map[string]bool)
	var out []string
	for _, rec := range ix.files {
		name := StrippedName(rec.RelativePath)
		if !strings.Contains(strings.ToLower(name), needle) || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, "#"+name)
	}
	sort.Strings(out)
	return out
}

// completeFolders resolves all but the last dotted segment by exact,
// case-sensitive descent, then prefix-filters the directory-typed children at
// that level. Each result reconstructs the full dotted prefix.
func (ix *Index) completeFolders(token string) []string {
	segs := strings.Split(token, ".")
	last := segs[len(segs)-1]

	node, ok := ix.descend(segs[:len(segs)-1])
	if !ok {
		return nil
	}

	prefix := "."
	if len(segs) > 1 {
		prefix += strings.Join(segs[:len(segs)-1], ".") + "."
	}

	var out []string
	for name, ent := range ix.dirs[node].children {
		if ent.kind == entryDir && strings.HasPrefix(name, last) {
			out = append(out, prefix+name)
		}
	}
	sort.Strings(out)
	return out
}
