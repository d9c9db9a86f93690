package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbforge/nbforge/internal/notebook"
)

func cell(category notebook.Category, source string) notebook.Cell {
	return notebook.Cell{Kind: notebook.KindCode, Source: source, Category: category}
}

func TestGenerate_AlwaysEmitsMainAndConfig(t *testing.T) {
	t.Parallel()

	modules := Generate(nil)

	require.Contains(t, modules, ModuleMain)
	require.Contains(t, modules, ModuleConfig)
	assert.NotContains(t, modules, ModuleFunctions)
	assert.NotContains(t, modules, ModuleTraining)
}

func TestGenerate_ConditionalModules(t *testing.T) {
	t.Parallel()

	modules := Generate([]notebook.Cell{
		cell(notebook.CategoryFunctionDefinitions, "def f(x): return x+1"),
		cell(notebook.CategoryModelTraining, "model.fit(X, y)"),
	})

	require.Contains(t, modules, ModuleFunctions)
	require.Contains(t, modules, ModuleTraining)
	assert.Contains(t, modules[ModuleFunctions], "def f(x): return x+1")
	assert.Contains(t, modules[ModuleTraining], "model.fit(X, y)")
}

func TestGenerate_MainImportsComeFirstVerbatim(t *testing.T) {
	t.Parallel()

	modules := Generate([]notebook.Cell{
		cell(notebook.CategoryGeneralCode, "x = 1"),
		cell(notebook.CategoryImports, "import numpy as np\nimport pandas as pd"),
	})

	main := modules[ModuleMain]
	importIdx := strings.Index(main, "import numpy as np\nimport pandas as pd")
	mainDefIdx := strings.Index(main, "def main():")

	require.NotEqual(t, -1, importIdx)
	require.NotEqual(t, -1, mainDefIdx)
	assert.Less(t, importIdx, mainDefIdx, "imports must precede the entry point")
}

// The main module regroups execution cells into the fixed category order,
// not document order.
func TestGenerate_MainUsesFixedCategoryOrder(t *testing.T) {
	t.Parallel()

	modules := Generate([]notebook.Cell{
		cell(notebook.CategoryVisualization, "plt.plot(losses)"),
		cell(notebook.CategoryDataProcessing, "df = clean(df)"),
		cell(notebook.CategoryModelTraining, "model.fit(X, y)"),
	})

	main := modules[ModuleMain]
	processing := strings.Index(main, "# Data Processing")
	training := strings.Index(main, "# Model Training")
	visualization := strings.Index(main, "# Visualization")

	require.NotEqual(t, -1, processing)
	require.NotEqual(t, -1, training)
	require.NotEqual(t, -1, visualization)
	assert.Less(t, processing, training)
	assert.Less(t, training, visualization)
}

func TestGenerate_MainPreservesDocumentOrderWithinCategory(t *testing.T) {
	t.Parallel()

	modules := Generate([]notebook.Cell{
		cell(notebook.CategoryGeneralCode, "first = 1"),
		cell(notebook.CategoryGeneralCode, "second = 2"),
	})

	main := modules[ModuleMain]
	assert.Less(t, strings.Index(main, "first = 1"), strings.Index(main, "second = 2"))
}

func TestGenerate_MainIndentsEveryLine(t *testing.T) {
	t.Parallel()

	modules := Generate([]notebook.Cell{
		cell(notebook.CategoryGeneralCode, "for i in range(3):\n\n    print(i)"),
	})

	main := modules[ModuleMain]
	assert.Contains(t, main, "    for i in range(3):\n    \n        print(i)")
}

func TestGenerate_MainGuardedInvocation(t *testing.T) {
	t.Parallel()

	main := Generate(nil)[ModuleMain]

	assert.True(t, strings.HasPrefix(main, "#!/usr/bin/env python3\n"))
	assert.Contains(t, main, "if __name__ == \"__main__\":\n    main()")
}

func TestGenerate_EmptyBodyFallsBackToPass(t *testing.T) {
	t.Parallel()

	main := Generate([]notebook.Cell{
		cell(notebook.CategoryImports, "import os"),
	})[ModuleMain]

	assert.Contains(t, main, "def main():\n    \"\"\"Main execution function\"\"\"\n    pass")
}

func TestGenerate_FunctionsModuleIsFlat(t *testing.T) {
	t.Parallel()

	modules := Generate([]notebook.Cell{
		cell(notebook.CategoryFunctionDefinitions, "def a(): pass"),
		cell(notebook.CategoryFunctionDefinitions, "def b(): pass"),
	})

	functions := modules[ModuleFunctions]
	assert.Contains(t, functions, "def a(): pass\n\ndef b(): pass")
	// No entry-point wrapping or indentation in flat modules.
	assert.NotContains(t, functions, "def main():")
	assert.NotContains(t, functions, "    def a")
}

// The config module is a fixed contract, independent of notebook contents.
func TestGenerate_ConfigModuleIsStatic(t *testing.T) {
	t.Parallel()

	first := Generate([]notebook.Cell{cell(notebook.CategoryImports, "import torch")})
	second := Generate([]notebook.Cell{cell(notebook.CategoryGeneralCode, "y = 2")})

	assert.Equal(t, first[ModuleConfig], second[ModuleConfig])
	assert.Equal(t, ConfigModuleSource, first[ModuleConfig])
	assert.Contains(t, first[ModuleConfig], "'random_state': 42")
	assert.Contains(t, first[ModuleConfig], "'test_size': 0.2")
}

func TestCategoryLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Data Processing", categoryLabel(notebook.CategoryDataProcessing))
	assert.Equal(t, "General Code", categoryLabel(notebook.CategoryGeneralCode))
	assert.Equal(t, "Visualization", categoryLabel(notebook.CategoryVisualization))
}
