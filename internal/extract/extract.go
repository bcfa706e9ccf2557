// Package extract turns raw component source into the exported identifiers
// and imported module specifiers the index records per file. Parsing is done
// with tree-sitter; the extraction contract is that it never fails, so
// unparseable input degrades to an empty Result and one malformed file can
// never abort an index build.
package extract

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
)

// Result is the contract the classifier consumes. Both sequences keep source
// order; duplicate export names are preserved.
type Result struct {
	Exports []string
	Imports []string
}

// Source parses content and collects top-level exports and imports. Errors
// are swallowed into an empty Result.
func Source(ctx context.Context, content []byte, path string) Result {
	parser := sitter.NewParser()
	parser.SetLanguage(grammarFor(path))

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil || tree == nil {
		return Result{}
	}
	defer tree.Close()

	var res Result
	root := tree.RootNode()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		switch node.Type() {
		case "import_statement":
			if src := node.ChildByFieldName("source"); src != nil {
				res.Imports = append(res.Imports, unquote(text(src, content)))
			}
		case "export_statement":
			collectExport(node, content, &res)
		}
	}
	return res
}

// grammarFor picks the grammar by extension: the TSX grammar covers .tsx (and
// plain .ts), the JavaScript grammar handles .jsx.
func grammarFor(path string) *sitter.Language {
	if strings.HasSuffix(strings.ToLower(path), ".jsx") {
		return javascript.GetLanguage()
	}
	return tsx.GetLanguage()
}

// declarationTypes are exported declaration forms that carry a name field.
var declarationTypes = map[string]bool{
	"function_declaration":           true,
	"generator_function_declaration": true,
	"class_declaration":              true,
	"abstract_class_declaration":     true,
	"interface_declaration":          true,
	"type_alias_declaration":         true,
	"enum_declaration":               true,
}

func collectExport(node *sitter.Node, content []byte, res *Result) {
	// A re-export ("export { A } from './a'") also counts as an import of
	// its source module.
	if src := node.ChildByFieldName("source"); src != nil {
		res.Imports = append(res.Imports, unquote(text(src, content)))
	}

	if decl := node.ChildByFieldName("declaration"); decl != nil {
		switch {
		case declarationTypes[decl.Type()]:
			if name := decl.ChildByFieldName("name"); name != nil {
				res.Exports = append(res.Exports, text(name, content))
			}
		case decl.Type() == "lexical_declaration" || decl.Type() == "variable_declaration":
			for i := 0; i < int(decl.NamedChildCount()); i++ {
				declarator := decl.NamedChild(i)
				if declarator.Type() != "variable_declarator" {
					continue
				}
				// Destructuring patterns are skipped; only plain
				// identifier bindings become export names.
				if name := declarator.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
					res.Exports = append(res.Exports, text(name, content))
				}
			}
		}
		return
	}

	// export { A, B as C }
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "export_clause" {
			continue
		}
		for j := 0; j < int(child.NamedChildCount()); j++ {
			spec := child.NamedChild(j)
			if spec.Type() != "export_specifier" {
				continue
			}
			name := spec.ChildByFieldName("alias")
			if name == nil {
				name = spec.ChildByFieldName("name")
			}
			if name != nil {
				res.Exports = append(res.Exports, text(name, content))
			}
		}
	}

	// export default Foo: only a bare identifier yields a name.
	if value := node.ChildByFieldName("value"); value != nil && value.Type() == "identifier" {
		res.Exports = append(res.Exports, text(value, content))
	}
}

func text(node *sitter.Node, content []byte) string {
	return string(content[node.StartByte():node.EndByte()])
}

func unquote(s string) string {
	return strings.Trim(s, "\"'`")
}
