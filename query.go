package reactgen

// The public query surface. All three operations are stateless, synchronous
// reads of the current Index and may run concurrently without coordination.
// Before the first successful build or load they return empty results.

// Complete returns the sorted completions for the token ending exactly at
// cursor in line. An unrecognized token and a recognized token with no
// matches both produce an empty result.
func (e *Engine) Complete(line string, cursor int) []string {
	ix := e.current.Load()
	if ix == nil {
		return nil
	}
	return ix.Complete(line, cursor, e.catalog.Entries())
}

// CompleteLine is Complete shaped for line editors: head is the input up to
// the token's trigger character, and each completion is a full replacement
// for the token including its sigil.
func (e *Engine) CompleteLine(line string, cursor int) (head string, completions []string) {
	ix := e.current.Load()
	if ix == nil {
		return line, nil
	}
	anchor, completions := ix.CompleteAt(line, cursor, e.catalog.Entries())
	if anchor < 0 {
		return line, nil
	}
	return line[:anchor], completions
}

// ResolveReference maps "#name" or ".seg1.seg2#name" to the relative path of
// exactly one indexed file. A reference that does not resolve is a routine
// outcome, reported as ok == false.
func (e *Engine) ResolveReference(ref string) (string, bool) {
	ix := e.current.Load()
	if ix == nil {
		return "", false
	}
	return ix.ResolveReference(ref)
}

// FilesInFolder lists the stripped filenames directly inside a dotted folder
// path such as ".src.components".
func (e *Engine) FilesInFolder(dotted string) []string {
	ix := e.current.Load()
	if ix == nil {
		return nil
	}
	return ix.FilesInFolder(dotted)
}
