package vcs

const gitignoreTemplate = `# Data files
data/raw/
data/processed/
data/external/

# Model files
models/trained/
models/pretrained/
models/checkpoints/

# Environment
.env
.venv
env/
venv/
ENV/

# IDE
.vscode/
.idea/
*.swp
*.swo

# OS
.DS_Store
Thumbs.db

# Jupyter
.ipynb_checkpoints/
*.ipynb_checkpoints*

# MLFlow
mlruns/

# DVC
.dvc/

# Logs
*.log
logs/

# Temporary files
*.tmp
*.temp

# Large files
*.h5
*.hdf5
*.pickle
*.pkl
`

const preCommitHook = `#!/bin/bash
# Pre-commit hook for ML project

echo "Running pre-commit checks..."

# Check for large files
large_files=$(find . -type f -size +10M -not -path "./.git/*")
if [ -n "$large_files" ]; then
    echo "Warning: Large files detected:"
    echo "$large_files"
    echo "Consider using DVC for large files."
fi

# Check for credentials
if grep -r "password\|secret\|key" --include="*.py" --include="*.yaml" --include="*.yml" . | grep -v ".git"; then
    echo "Warning: Possible credentials detected in code"
fi

# Run black formatting check
echo "Checking code formatting with black..."
python -m black --check --diff src/ tests/

if [ $? -ne 0 ]; then
    echo "Code formatting check failed. Run 'black src/ tests/' to format."
    exit 1
fi

echo "Pre-commit checks passed!"
`

const postCommitHook = `#!/bin/bash
# Post-commit hook for ML project

echo "Post-commit actions..."

COMMIT_HASH=$(git rev-parse HEAD)

if [ -f "src/tracking.py" ]; then
    echo "Updating experiment tracking with commit $COMMIT_HASH"
fi

echo "Post-commit actions completed"
`
