package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Output struct {
		Path   string `yaml:"path"`
		Report bool   `yaml:"report"`
	} `yaml:"output"`
	Document struct {
		TargetLines int   `yaml:"target_lines"`
		Seed        int64 `yaml:"seed"` // 0 seeds from the wall clock
	} `yaml:"document"`
}

// Default returns the built-in settings: the fixed output path and the
// 50,000 line target.
func Default() *Config {
	cfg := &Config{}
	cfg.Output.Path = "TestDocuments/large-test-50k.md"
	cfg.Output.Report = true
	cfg.Document.TargetLines = 50000
	return cfg
}

// LoadConfig builds the effective configuration: defaults, then the
// YAML file if it exists, then environment variables. A missing config
// file is not an error since every setting has a default.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config when present
	if file, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with Environment Variables if present
	if out := os.Getenv("MDGEN_OUTPUT_PATH"); out != "" {
		cfg.Output.Path = out
	}
	if lines := os.Getenv("MDGEN_TARGET_LINES"); lines != "" {
		if n, err := strconv.Atoi(lines); err == nil && n > 0 {
			cfg.Document.TargetLines = n
		}
	}
	if seed := os.Getenv("MDGEN_SEED"); seed != "" {
		if n, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Document.Seed = n
		}
	}

	return cfg, nil
}
