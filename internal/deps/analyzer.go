// Package deps extracts and classifies the Python imports referenced by a
// notebook's code cells.
package deps

import (
	"sort"

	"github.com/nbforge/nbforge/internal/notebook"
)

// Report is the result of dependency analysis over a cell sequence.
type Report struct {
	// AllDependencies holds every top-level import identifier found in the
	// document, deduplicated and sorted.
	AllDependencies []string `json:"all_dependencies"`

	// Categorized maps each fixed category name to the subset of
	// AllDependencies satisfying that category's membership predicate.
	// Identifiers matching no predicate appear only in AllDependencies.
	Categorized map[string][]string `json:"categorized"`

	// Requirements is AllDependencies rendered as a flat installable package
	// list. No version pins: version resolution is out of scope.
	Requirements []string `json:"requirements"`
}

// Analyzer extracts import identifiers from code cells using a structural
// parse with a pattern-matching fallback.
type Analyzer struct {
	python *pythonImportParser
}

// NewAnalyzer creates a dependency analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		python: newPythonImportParser(),
	}
}

// ProgressReporter receives per-cell progress callbacks during analysis.
// Implementations live with the caller (e.g. a CLI progress bar); a nil
// reporter disables reporting.
type ProgressReporter interface {
	OnCellAnalyzed(processed, total int)
}

// Analyze collects the top-level import identifiers of every code cell and
// returns the aggregated, categorized report. A cell whose source yields no
// identifiers on either extraction path contributes nothing; per-cell failure
// is silent and never aborts the batch.
func (a *Analyzer) Analyze(cells []notebook.Cell) *Report {
	return a.AnalyzeWithProgress(cells, nil)
}

// AnalyzeWithProgress is Analyze with a per-cell progress callback.
func (a *Analyzer) AnalyzeWithProgress(cells []notebook.Cell, progress ProgressReporter) *Report {
	all := make(map[string]bool)

	for i, cell := range cells {
		if cell.Kind == notebook.KindCode {
			for name := range a.extractImports(cell.Source) {
				all[name] = true
			}
		}
		if progress != nil {
			progress.OnCellAnalyzed(i+1, len(cells))
		}
	}

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	categorized := make(map[string][]string, len(categories))
	for _, cat := range categories {
		members := []string{}
		for _, name := range names {
			if cat.matches(name) {
				members = append(members, name)
			}
		}
		categorized[cat.name] = members
	}

	return &Report{
		AllDependencies: names,
		Categorized:     categorized,
		Requirements:    append([]string{}, names...),
	}
}

// extractImports runs the structural parse and falls back to the pattern
// scanner when the source is not standalone-parseable (partial statements,
// shell escapes, magic directives). Both paths honor the same top-level
// identifier contract, so which path a cell takes is not observable in the
// result for well-formed input.
func (a *Analyzer) extractImports(source string) map[string]bool {
	if imports, ok := a.python.structuralImports(source); ok {
		return imports
	}
	return fallbackImports(source)
}
