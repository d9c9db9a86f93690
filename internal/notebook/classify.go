package notebook

import "strings"

// classificationRule pairs a predicate with the category it assigns.
// Rules are evaluated in order against the lowercased source text; the first
// satisfied rule wins and no cell receives more than one category.
type classificationRule struct {
	matches  func(source string) bool
	category Category
}

func containsAny(tokens ...string) func(string) bool {
	return func(source string) bool {
		for _, tok := range tokens {
			if strings.Contains(source, tok) {
				return true
			}
		}
		return false
	}
}

// codeRules classify code cells. Precedence matters: an import cell that also
// mentions "model" is still an imports cell.
var codeRules = []classificationRule{
	{containsAny("import", "from "), CategoryImports},
	{containsAny("def ", "class ", "function"), CategoryFunctionDefinitions},
	{containsAny("model", "train", "fit", "compile"), CategoryModelTraining},
	{containsAny("plot", "visualize", "plt.", "seaborn"), CategoryVisualization},
	{containsAny("preprocess", "clean", "transform"), CategoryDataProcessing},
	{containsAny("test", "assert", "check"), CategoryTesting},
}

// markdownRules classify markdown cells by heading vocabulary.
var markdownRules = []classificationRule{
	{containsAny("# introduction", "# overview", "# abstract"), CategoryIntroduction},
	{containsAny("# setup", "# installation", "# requirements"), CategorySetup},
	{containsAny("# data", "# dataset", "# loading"), CategoryDataDescription},
	{containsAny("# method", "# approach", "# methodology"), CategoryMethodology},
	{containsAny("# result", "# output", "# finding"), CategoryResults},
	{containsAny("# conclusion", "# summary", "# discussion"), CategoryConclusion},
}

// Classify assigns the semantic category for a cell of the given kind.
// Classification is total: every input resolves to some category, with
// general_code, documentation, and other acting as catch-alls. This is a
// heuristic over the raw text, not a parse; determinism and stable rule
// order are the contract, semantic correctness is not.
func Classify(kind CellKind, source string) Category {
	switch kind {
	case KindCode:
		return classifyCode(source)
	case KindMarkdown:
		return classifyMarkdown(source)
	default:
		return CategoryOther
	}
}

func classifyCode(source string) Category {
	if strings.TrimSpace(source) == "" {
		return CategoryEmpty
	}

	lower := strings.ToLower(source)
	for _, rule := range codeRules {
		if rule.matches(lower) {
			return rule.category
		}
	}
	return CategoryGeneralCode
}

func classifyMarkdown(source string) Category {
	if strings.TrimSpace(source) == "" {
		return CategoryEmpty
	}

	lower := strings.ToLower(source)
	for _, rule := range markdownRules {
		if rule.matches(lower) {
			return rule.category
		}
	}

	// Any other heading marker still reads as a section header.
	if strings.HasPrefix(lower, "#") || strings.Contains(lower, "##") {
		return CategorySectionHeader
	}
	return CategoryDocumentation
}
