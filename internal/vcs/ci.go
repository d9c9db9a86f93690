package vcs

import (
	"fmt"
	"os"
	"path/filepath"
)

// SetupCITemplate writes a CI/CD pipeline template for the given platform.
// Only GitHub Actions is supported; other platforms return empty without
// error so callers can report "skipped" rather than failing the conversion.
func (m *Manager) SetupCITemplate(platform string) (string, error) {
	if platform != "github" {
		return "", nil
	}

	workflowsDir := filepath.Join(m.projectPath, ".github", "workflows")
	if err := os.MkdirAll(workflowsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create workflows directory: %w", err)
	}

	path := filepath.Join(workflowsDir, "ml-pipeline.yml")
	if err := os.WriteFile(path, []byte(githubPipelineTemplate), 0644); err != nil {
		return "", fmt.Errorf("failed to write CI template: %w", err)
	}

	return path, nil
}

const githubPipelineTemplate = `name: ML Pipeline

on:
  push:
    branches: [ main, develop ]
  pull_request:
    branches: [ main ]

jobs:
  test:
    runs-on: ubuntu-latest
    strategy:
      matrix:
        python-version: ["3.10", "3.11"]

    steps:
    - uses: actions/checkout@v4

    - name: Set up Python ${{ matrix.python-version }}
      uses: actions/setup-python@v5
      with:
        python-version: ${{ matrix.python-version }}

    - name: Install dependencies
      run: |
        python -m pip install --upgrade pip
        pip install -r requirements.txt
        pip install pytest pytest-cov black flake8

    - name: Check code formatting with black
      run: |
        black --check src/ tests/

    - name: Lint with flake8
      run: |
        flake8 src/ tests/ --max-line-length=88

    - name: Run tests with pytest
      run: |
        pytest tests/ --cov=src --cov-report=xml

    - name: Upload coverage to Codecov
      uses: codecov/codecov-action@v4
      with:
        file: ./coverage.xml

  train-model:
    runs-on: ubuntu-latest
    needs: test
    if: github.ref == 'refs/heads/main'

    steps:
    - uses: actions/checkout@v4

    - name: Set up Python
      uses: actions/setup-python@v5
      with:
        python-version: "3.11"

    - name: Install dependencies
      run: |
        pip install -r requirements.txt

    - name: Train model
      run: |
        python src/training.py --config config/training_config.yaml

    - name: Save model artifact
      uses: actions/upload-artifact@v4
      with:
        name: trained-model
        path: models/trained/
`
