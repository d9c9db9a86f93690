package notebook

import "encoding/json"

// CellKind identifies the kind of a notebook cell.
type CellKind string

const (
	KindCode     CellKind = "code"
	KindMarkdown CellKind = "markdown"
	KindOther    CellKind = "other"
)

// Category is the semantic tag assigned to a cell by the classifier.
// Every cell carries exactly one category.
type Category string

// Code cell categories, in rule-precedence order.
const (
	CategoryEmpty               Category = "empty"
	CategoryImports             Category = "imports"
	CategoryFunctionDefinitions Category = "function_definitions"
	CategoryModelTraining       Category = "model_training"
	CategoryVisualization       Category = "visualization"
	CategoryDataProcessing      Category = "data_processing"
	CategoryTesting             Category = "testing"
	CategoryGeneralCode         Category = "general_code"
)

// Markdown cell categories.
const (
	CategoryIntroduction    Category = "introduction"
	CategorySetup           Category = "setup"
	CategoryDataDescription Category = "data_description"
	CategoryMethodology     Category = "methodology"
	CategoryResults         Category = "results"
	CategoryConclusion      Category = "conclusion"
	CategorySectionHeader   Category = "section_header"
	CategoryDocumentation   Category = "documentation"
)

// CategoryOther is the catch-all for cells that are neither code nor markdown.
const CategoryOther Category = "other"

// Cell is one unit of notebook content with its derived category.
// Source is always the fully normalized text block; Outputs are opaque
// execution records retained only for code cells.
type Cell struct {
	Kind     CellKind          `json:"cell_type"`
	Source   string            `json:"source"`
	Metadata map[string]any    `json:"metadata,omitempty"`
	Outputs  []json.RawMessage `json:"outputs,omitempty"`
	Category Category          `json:"category"`
}

// KernelInfo summarizes the kernel descriptors found in notebook metadata.
// Fields absent from the metadata stay empty and are omitted on serialization.
type KernelInfo struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Language    string `json:"language,omitempty"`
	Version     string `json:"version,omitempty"`
}

// Document is the parsed, classified form of a notebook. Cell order matches
// the authoring order of the source document.
type Document struct {
	FormatVersion int            `json:"nbformat"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	Cells         []Cell         `json:"cells"`
	Kernel        KernelInfo     `json:"kernel_info"`
}

// CodeCells returns the document's code cells in document order.
func (d *Document) CodeCells() []Cell {
	var cells []Cell
	for _, c := range d.Cells {
		if c.Kind == KindCode {
			cells = append(cells, c)
		}
	}
	return cells
}

// CellsByCategory groups cells by category, preserving document order within
// each group.
func (d *Document) CellsByCategory() map[Category][]Cell {
	grouped := make(map[Category][]Cell)
	for _, c := range d.Cells {
		grouped[c.Category] = append(grouped[c.Category], c)
	}
	return grouped
}
