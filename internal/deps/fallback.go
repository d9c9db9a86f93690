package deps

import (
	"regexp"
	"strings"
)

var (
	// Matches "import a, b.c as d" shapes; the capture holds everything
	// after the keyword up to a newline or comment.
	importLinePattern = regexp.MustCompile(`(?m)^\s*import\s+([^\n#]+)`)

	// Matches "from a.b.c import x" shapes; the capture holds the module path.
	fromLinePattern = regexp.MustCompile(`(?m)^\s*from\s+([^\s\n#]+)\s+import`)
)

// fallbackImports is the pattern-matching recovery path used when a cell is
// not standalone-parseable. It scans line by line for import-statement shapes
// and applies the same top-level-identifier contract as the structural path:
// "import numpy as np" yields numpy, "from sklearn.linear_model import X"
// yields sklearn.
func fallbackImports(source string) map[string]bool {
	imports := make(map[string]bool)

	for _, match := range importLinePattern.FindAllStringSubmatch(source, -1) {
		for _, part := range strings.Split(match[1], ",") {
			fields := strings.Fields(part)
			if len(fields) == 0 {
				continue
			}
			if top, _, _ := strings.Cut(fields[0], "."); top != "" {
				imports[top] = true
			}
		}
	}

	for _, match := range fromLinePattern.FindAllStringSubmatch(source, -1) {
		// Relative imports ("from . import x") carry no top-level module.
		if top, _, _ := strings.Cut(match[1], "."); top != "" {
			imports[top] = true
		}
	}

	return imports
}
