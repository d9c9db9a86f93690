// Package codegen regenerates categorized notebook cells as organized Python
// source modules.
package codegen

import (
	"strings"

	"github.com/nbforge/nbforge/internal/notebook"
)

// Logical names of the generated modules. The caller chooses file paths and
// extensions when persisting.
const (
	ModuleMain      = "main"
	ModuleFunctions = "functions"
	ModuleTraining  = "training"
	ModuleConfig    = "config"
)

// executionOrder is the fixed category order of the main module body. Cells
// are regrouped into this order regardless of where they sat in the document;
// within a category, document order is preserved.
var executionOrder = []notebook.Category{
	notebook.CategoryDataProcessing,
	notebook.CategoryModelTraining,
	notebook.CategoryVisualization,
	notebook.CategoryGeneralCode,
}

// Generate produces the output source modules for a classified cell
// sequence: always a main entry module and the static config module, plus a
// functions module when any function_definitions cells exist and a training
// module when any model_training cells exist.
func Generate(cells []notebook.Cell) map[string]string {
	grouped := groupByCategory(cells)

	modules := map[string]string{
		ModuleMain:   generateMainModule(grouped),
		ModuleConfig: ConfigModuleSource,
	}

	if fns := grouped[notebook.CategoryFunctionDefinitions]; len(fns) > 0 {
		modules[ModuleFunctions] = generateFlatModule(functionsHeader, fns)
	}
	if training := grouped[notebook.CategoryModelTraining]; len(training) > 0 {
		modules[ModuleTraining] = generateFlatModule(trainingHeader, training)
	}

	return modules
}

func groupByCategory(cells []notebook.Cell) map[notebook.Category][]notebook.Cell {
	grouped := make(map[notebook.Category][]notebook.Cell)
	for _, c := range cells {
		grouped[c.Category] = append(grouped[c.Category], c)
	}
	return grouped
}

// generateMainModule assembles the main execution script: imports verbatim,
// then a main() entry point wrapping the execution categories in fixed
// order, closed by a __main__ guard.
func generateMainModule(grouped map[notebook.Category][]notebook.Cell) string {
	var b strings.Builder

	b.WriteString("#!/usr/bin/env python3\n")
	b.WriteString("\"\"\"\nMain execution script generated from a Jupyter notebook\n\"\"\"\n\n")

	for _, cell := range grouped[notebook.CategoryImports] {
		b.WriteString(cell.Source)
		b.WriteString("\n")
	}
	if len(grouped[notebook.CategoryImports]) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("def main():\n")
	b.WriteString("    \"\"\"Main execution function\"\"\"\n")

	wroteBody := false
	for _, cat := range executionOrder {
		cells := grouped[cat]
		if len(cells) == 0 {
			continue
		}
		wroteBody = true

		b.WriteString("    # " + categoryLabel(cat) + "\n")
		for _, cell := range cells {
			b.WriteString(indentBlock(cell.Source, "    "))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if !wroteBody {
		b.WriteString("    pass\n\n")
	}

	b.WriteString("\nif __name__ == \"__main__\":\n")
	b.WriteString("    main()\n")

	return b.String()
}

// generateFlatModule concatenates a category's cells in document order under
// a module docstring, one blank line between cells, no indentation.
func generateFlatModule(header string, cells []notebook.Cell) string {
	var b strings.Builder

	b.WriteString("\"\"\"\n" + header + "\n\"\"\"\n\n")
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(cell.Source)
		b.WriteString("\n")
	}

	return b.String()
}

// indentBlock indents every line of source, blank lines included, so
// multi-line cell bodies stay syntactically nested as one block. The result
// is not re-parsed: output correctness is only as good as the cell source.
func indentBlock(source, indent string) string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}

// categoryLabel renders a category name as a title-cased comment label,
// e.g. data_processing -> "Data Processing".
func categoryLabel(cat notebook.Category) string {
	words := strings.Split(string(cat), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
