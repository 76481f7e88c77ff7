package examimport

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds batch importer settings. Command-line flags override it.
type Config struct {
	// Path is an exam text file or a directory scanned for Pattern.
	Path    string `yaml:"path"    env:"EXAM_IMPORT_PATH"`
	Pattern string `yaml:"pattern" env:"EXAM_IMPORT_PATTERN" env-default:"*.txt"`
	// Vocab also extracts vocabulary from every file into the vocabulary book.
	Vocab bool `yaml:"vocab" env:"EXAM_IMPORT_VOCAB"`
	// DryRun extracts and prints questions without writing to the database.
	DryRun bool `yaml:"dry_run" env:"EXAM_IMPORT_DRY_RUN"`
}

// LoadConfig reads importer config from YAML or environment variables.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("exam-import config: %w", err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("exam-import config: file %s not found", path)
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("exam-import config: read env: %w", err)
	}
	return &cfg, nil
}
