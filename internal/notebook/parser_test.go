package notebook

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Parse:
// - Accept supported nbformat versions (4, 5) and default when absent
// - Reject unsupported versions with no partial result
// - Reject undecodable JSON
// - Normalize string and fragment-list sources identically
// - Preserve cell order end-to-end
// - Assign every cell exactly one category
// - Retain outputs for code cells only
// - Extract kernel info from kernelspec and language_info

func TestParse_SupportedVersions(t *testing.T) {
	t.Parallel()

	for _, version := range []int{4, 5} {
		doc, err := Parse([]byte(fmt.Sprintf(`{"nbformat": %d, "cells": []}`, version)))
		require.NoError(t, err)
		assert.Equal(t, version, doc.FormatVersion)
	}
}

func TestParse_DefaultsVersionWhenAbsent(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{"cells": []}`))
	require.NoError(t, err)
	assert.Equal(t, 4, doc.FormatVersion)
}

func TestParse_RejectsUnsupportedVersion(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{"nbformat": 2, "cells": [{"cell_type": "code", "source": "import os"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported notebook version: 2")
	assert.Nil(t, doc)
}

func TestParse_RejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{"nbformat": 4, "cells": [`))
	require.Error(t, err)
	assert.Nil(t, doc)
}

func TestParse_NormalizesFragmentSources(t *testing.T) {
	t.Parallel()

	fromFragments, err := Parse([]byte(`{
		"nbformat": 4,
		"cells": [{"cell_type": "code", "source": ["import os\n", "import sys"]}]
	}`))
	require.NoError(t, err)

	fromString, err := Parse([]byte(`{
		"nbformat": 4,
		"cells": [{"cell_type": "code", "source": "import os\nimport sys"}]
	}`))
	require.NoError(t, err)

	require.Len(t, fromFragments.Cells, 1)
	require.Len(t, fromString.Cells, 1)
	assert.Equal(t, "import os\nimport sys", fromFragments.Cells[0].Source)
	assert.Equal(t, fromString.Cells[0].Source, fromFragments.Cells[0].Source)
}

func TestParse_FragmentsConcatenateWithoutSeparator(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{
		"nbformat": 4,
		"cells": [{"cell_type": "code", "source": ["x = ", "1"]}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "x = 1", doc.Cells[0].Source)
}

func TestParse_PreservesCellOrder(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{
		"nbformat": 4,
		"cells": [
			{"cell_type": "code", "source": "import numpy as np"},
			{"cell_type": "code", "source": "def f(x): return x+1"},
			{"cell_type": "code", "source": "result = [1,2,3]"}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, doc.Cells, 3)

	assert.Equal(t, "import numpy as np", doc.Cells[0].Source)
	assert.Equal(t, "def f(x): return x+1", doc.Cells[1].Source)
	assert.Equal(t, "result = [1,2,3]", doc.Cells[2].Source)

	categories := []Category{doc.Cells[0].Category, doc.Cells[1].Category, doc.Cells[2].Category}
	assert.Equal(t, []Category{CategoryImports, CategoryFunctionDefinitions, CategoryGeneralCode}, categories)
}

func TestParse_EveryCellGetsACategory(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{
		"nbformat": 4,
		"cells": [
			{"cell_type": "code", "source": ""},
			{"cell_type": "markdown", "source": "# Introduction"},
			{"cell_type": "raw", "source": "raw text"},
			{"cell_type": "code", "source": "@@@"}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, doc.Cells, 4)

	for _, cell := range doc.Cells {
		assert.NotEmpty(t, cell.Category)
	}
	assert.Equal(t, CategoryEmpty, doc.Cells[0].Category)
	assert.Equal(t, CategoryIntroduction, doc.Cells[1].Category)
	assert.Equal(t, CategoryOther, doc.Cells[2].Category)
	assert.Equal(t, CategoryGeneralCode, doc.Cells[3].Category)
}

func TestParse_OutputsRetainedOnlyForCodeCells(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{
		"nbformat": 4,
		"cells": [
			{"cell_type": "code", "source": "1+1", "outputs": [{"output_type": "execute_result"}]},
			{"cell_type": "markdown", "source": "notes", "outputs": [{"output_type": "stream"}]}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, doc.Cells, 2)

	assert.Len(t, doc.Cells[0].Outputs, 1)
	assert.Empty(t, doc.Cells[1].Outputs)
}

func TestParse_KernelInfoFromKernelspec(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{
		"nbformat": 4,
		"metadata": {
			"kernelspec": {"name": "python3", "display_name": "Python 3", "language": "python"}
		},
		"cells": []
	}`))
	require.NoError(t, err)

	assert.Equal(t, "python3", doc.Kernel.Name)
	assert.Equal(t, "Python 3", doc.Kernel.DisplayName)
	assert.Equal(t, "python", doc.Kernel.Language)
	assert.Empty(t, doc.Kernel.Version)
}

func TestParse_KernelInfoFromLanguageInfo(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{
		"nbformat": 4,
		"metadata": {
			"language_info": {"name": "python", "version": "3.11.4"}
		},
		"cells": []
	}`))
	require.NoError(t, err)

	assert.Equal(t, "python", doc.Kernel.Name)
	assert.Equal(t, "3.11.4", doc.Kernel.Version)
	assert.Empty(t, doc.Kernel.DisplayName)
}

func TestParse_KernelInfoAbsentMetadata(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{"nbformat": 4, "cells": []}`))
	require.NoError(t, err)
	assert.Equal(t, KernelInfo{}, doc.Kernel)
}

func TestDocument_CodeCells(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{
		"nbformat": 4,
		"cells": [
			{"cell_type": "markdown", "source": "# Data"},
			{"cell_type": "code", "source": "x = 1"},
			{"cell_type": "code", "source": "y = 2"}
		]
	}`))
	require.NoError(t, err)

	code := doc.CodeCells()
	require.Len(t, code, 2)
	assert.Equal(t, "x = 1", code[0].Source)
	assert.Equal(t, "y = 2", code[1].Source)
}
