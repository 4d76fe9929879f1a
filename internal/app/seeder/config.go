package seeder

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config controls a seeding run. Environment variables override the file.
type Config struct {
	// TaxonomyPath replaces the built-in taxonomy when set.
	TaxonomyPath string `yaml:"taxonomy_path" env:"SEEDER_TAXONOMY_PATH"`
	DryRun       bool   `yaml:"dry_run"       env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads path, or only the environment when path is empty.
// A named file that cannot be read is an error.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	read := func() error { return cleanenv.ReadEnv(&cfg) }
	if path != "" {
		read = func() error { return cleanenv.ReadConfig(path, &cfg) }
	}
	if err := read(); err != nil {
		return nil, fmt.Errorf("seeder config %q: %w", path, err)
	}
	return &cfg, nil
}
