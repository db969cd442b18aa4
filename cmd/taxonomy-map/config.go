package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
)

type Config struct {
	TaxonomyPath string
	CasesPath    string
	OutPath      string
	KeywordsPath string

	Model           string
	BaseURL         string
	APIKey          string
	Temperature     float64
	MaxOutputTokens int64

	MaxCases int
	Pretty   bool
	NoColor  bool
}

func (c Config) Validate() error {
	if c.TaxonomyPath == "" {
		return errors.New("missing -taxonomy")
	}
	if c.CasesPath == "" {
		return errors.New("missing -cases")
	}
	if c.OutPath == "" {
		return errors.New("missing -out")
	}
	if c.Model == "" {
		return errors.New("missing -model")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return errors.New("temperature must be in [0,2]")
	}
	if c.MaxOutputTokens < 0 {
		return errors.New("max-output-tokens must be >= 0")
	}
	if c.MaxCases < 0 {
		return errors.New("max-cases must be >= 0")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		TaxonomyPath:    "taxonomy.json",
		CasesPath:       "test_cases.json",
		OutPath:         "reasoning_log.json",
		Model:           "llama-3.3-70b-versatile",
		BaseURL:         "https://api.groq.com/openai/v1",
		Temperature:     0.1,
		MaxOutputTokens: 500,
		Pretty:          true,
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.TaxonomyPath, "taxonomy", cfg.TaxonomyPath, "Path to the taxonomy file (.json, .yaml, .yml)")
	fs.StringVar(&cfg.CasesPath, "cases", cfg.CasesPath, "Path to the ordered test-case file (.json, .yaml, .yml)")
	fs.StringVar(&cfg.OutPath, "out", cfg.OutPath, "Path for the reasoning log written after each case")
	fs.StringVar(&cfg.KeywordsPath, "keywords", "", "Optional keyword table file overriding the built-in one")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "Model to classify with")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "OpenAI-compatible endpoint base URL (empty = default OpenAI)")
	fs.StringVar(&cfg.APIKey, "api-key", "", "API key (overrides OPENAI_API_KEY / GROQ_API_KEY env vars)")
	fs.Float64Var(&cfg.Temperature, "temperature", cfg.Temperature, "Sampling temperature for the classification call")
	fs.Int64Var(&cfg.MaxOutputTokens, "max-output-tokens", cfg.MaxOutputTokens, "Max tokens in the model reply (0 = provider default)")
	fs.IntVar(&cfg.MaxCases, "max-cases", 0, "Process only the first N cases (0 = all)")
	fs.BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "Pretty-print the reasoning log JSON")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colorized report output")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.TaxonomyPath = filepath.Clean(cfg.TaxonomyPath)
	cfg.CasesPath = filepath.Clean(cfg.CasesPath)
	cfg.OutPath = filepath.Clean(cfg.OutPath)
	if cfg.KeywordsPath != "" {
		cfg.KeywordsPath = filepath.Clean(cfg.KeywordsPath)
	}
	return cfg, nil
}
