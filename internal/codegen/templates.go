package codegen

const (
	functionsHeader = "Utility functions generated from a Jupyter notebook"
	trainingHeader  = "Training module for machine learning models"
)

// ConfigModuleSource is the static configuration module. Its content is a
// fixed contract independent of notebook data and must stay byte-identical
// across runs.
const ConfigModuleSource = `"""Configuration file for ML project"""

import os
from pathlib import Path

# Project structure
PROJECT_ROOT = Path(__file__).parent
DATA_DIR = PROJECT_ROOT / 'data'
MODELS_DIR = PROJECT_ROOT / 'models'
REPORTS_DIR = PROJECT_ROOT / 'reports'

# Data configuration
class DataConfig:
    RAW_DATA_PATH = DATA_DIR / 'raw'
    PROCESSED_DATA_PATH = DATA_DIR / 'processed'

class ModelConfig:
    SAVE_PATH = MODELS_DIR / 'trained'
    HYPERPARAMETERS = {
        'random_state': 42,
        'test_size': 0.2
    }
`
