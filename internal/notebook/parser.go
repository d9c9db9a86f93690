package notebook

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SupportedVersions lists the nbformat major versions the parser accepts.
var SupportedVersions = []int{4, 5}

// defaultFormatVersion is assumed when a document carries no nbformat marker.
const defaultFormatVersion = 4

// rawDocument mirrors the on-disk notebook JSON shape.
type rawDocument struct {
	NBFormat *int           `json:"nbformat"`
	Metadata map[string]any `json:"metadata"`
	Cells    []rawCell      `json:"cells"`
}

// rawCell is a notebook cell as persisted. Source may be a single string or a
// list of line fragments.
type rawCell struct {
	CellType string            `json:"cell_type"`
	Source   json.RawMessage   `json:"source"`
	Metadata map[string]any    `json:"metadata"`
	Outputs  []json.RawMessage `json:"outputs"`
}

// Parse decodes a notebook document and returns its classified form.
// The only hard failure is document-level malformation: undecodable JSON or
// an unsupported nbformat version. Everything below that degrades to a
// defined default.
func Parse(data []byte) (*Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode notebook: %w", err)
	}

	version := defaultFormatVersion
	if raw.NBFormat != nil {
		version = *raw.NBFormat
	}
	if !supportedVersion(version) {
		return nil, fmt.Errorf("unsupported notebook version: %d", version)
	}

	doc := &Document{
		FormatVersion: version,
		Metadata:      raw.Metadata,
		Cells:         extractCells(raw.Cells),
		Kernel:        extractKernelInfo(raw.Metadata),
	}

	return doc, nil
}

func supportedVersion(v int) bool {
	for _, s := range SupportedVersions {
		if v == s {
			return true
		}
	}
	return false
}

// extractCells normalizes raw cell records and assigns each its category.
func extractCells(raw []rawCell) []Cell {
	cells := make([]Cell, 0, len(raw))

	for _, rc := range raw {
		kind := cellKind(rc.CellType)

		cell := Cell{
			Kind:     kind,
			Source:   normalizeSource(rc.Source),
			Metadata: rc.Metadata,
		}

		// Execution outputs only make sense for code cells.
		if kind == KindCode {
			cell.Outputs = rc.Outputs
		}

		cell.Category = Classify(kind, cell.Source)
		cells = append(cells, cell)
	}

	return cells
}

func cellKind(cellType string) CellKind {
	switch cellType {
	case "code", "":
		// Cells without an explicit type are treated as code, matching the
		// nbformat convention of code being the default cell type.
		return KindCode
	case "markdown":
		return KindMarkdown
	default:
		return KindOther
	}
}

// normalizeSource collapses a cell source into a single string. The field may
// arrive as one string or as an ordered list of fragments; fragments are
// concatenated directly with no inserted separator, so textual fidelity to
// the original document is exact.
func normalizeSource(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}

	var fragments []string
	if err := json.Unmarshal(raw, &fragments); err == nil {
		return strings.Join(fragments, "")
	}

	return ""
}

// extractKernelInfo pulls kernel descriptors out of notebook metadata.
// kernelspec wins over language_info when both are present; fields missing
// from the metadata are simply left empty.
func extractKernelInfo(metadata map[string]any) KernelInfo {
	var info KernelInfo

	if spec, ok := metadata["kernelspec"].(map[string]any); ok {
		info.Name = stringField(spec, "name")
		info.DisplayName = stringField(spec, "display_name")
		info.Language = stringField(spec, "language")
		return info
	}

	if lang, ok := metadata["language_info"].(map[string]any); ok {
		info.Name = stringField(lang, "name")
		info.Version = stringField(lang, "version")
	}

	return info
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
