package deps

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// pythonImportParser extracts import identifiers from Python source using a
// tree-sitter parse of the full cell.
type pythonImportParser struct {
	language *sitter.Language
}

func newPythonImportParser() *pythonImportParser {
	return &pythonImportParser{
		language: sitter.NewLanguage(python.Language()),
	}
}

// structuralImports parses source as a standalone Python module and collects
// the top-level identifier of every import declaration, wherever it appears
// in the tree (conditional imports inside branches and functions included).
// Returns ok=false when the source does not parse cleanly; callers are
// expected to fall back to pattern matching in that case.
func (p *pythonImportParser) structuralImports(source string) (map[string]bool, bool) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(p.language)

	tree := parser.Parse([]byte(source), nil)
	if tree == nil {
		return nil, false
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, false
	}

	src := []byte(source)
	imports := make(map[string]bool)

	walkTree(root, func(n *sitter.Node) bool {
		switch n.Kind() {
		case "import_statement":
			// import a.b.c, x as y  -> a, x
			for i := 0; i < int(n.NamedChildCount()); i++ {
				child := n.NamedChild(uint(i))
				switch child.Kind() {
				case "dotted_name":
					addTopLevel(imports, child, src)
				case "aliased_import":
					addTopLevel(imports, child.ChildByFieldName("name"), src)
				}
			}
		case "import_from_statement":
			// from a.b.c import x  -> a
			// from .rel import x   -> rel (when a module name is present)
			module := n.ChildByFieldName("module_name")
			if module == nil {
				return true
			}
			switch module.Kind() {
			case "dotted_name":
				addTopLevel(imports, module, src)
			case "relative_import":
				addTopLevel(imports, findChildByKind(module, "dotted_name"), src)
			}
		case "future_import_statement":
			imports["__future__"] = true
		}
		return true
	})

	return imports, true
}

// addTopLevel records the first dotted-path segment of a module reference.
func addTopLevel(imports map[string]bool, node *sitter.Node, source []byte) {
	if node == nil {
		return
	}

	text := nodeText(node, source)
	if top, _, _ := strings.Cut(text, "."); top != "" {
		imports[top] = true
	}
}

// nodeText extracts the text content of a tree-sitter node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// walkTree recursively walks a tree-sitter tree and calls the visitor for
// each node. Returning false from the visitor stops descent into that node.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		walkTree(node.Child(uint(i)), visitor)
	}
}

// findChildByKind finds the first child node with the given kind.
func findChildByKind(node *sitter.Node, kind string) *sitter.Node {
	if node == nil {
		return nil
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}
