package main

import (
	"flag"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("taxonomy-map", flag.ContinueOnError)
	cfg, err := parseFlags(fs, nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.TaxonomyPath != "taxonomy.json" || cfg.CasesPath != "test_cases.json" {
		t.Fatalf("paths=%q/%q", cfg.TaxonomyPath, cfg.CasesPath)
	}
	if cfg.Model != "llama-3.3-70b-versatile" {
		t.Fatalf("Model=%q", cfg.Model)
	}
	if cfg.BaseURL != "https://api.groq.com/openai/v1" {
		t.Fatalf("BaseURL=%q", cfg.BaseURL)
	}
	if cfg.Temperature != 0.1 || cfg.MaxOutputTokens != 500 {
		t.Fatalf("temperature=%v max=%d", cfg.Temperature, cfg.MaxOutputTokens)
	}
	if !cfg.Pretty {
		t.Fatalf("Pretty=false, want true by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestParseFlags_Overrides(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("taxonomy-map", flag.ContinueOnError)
	cfg, err := parseFlags(fs, []string{
		"-taxonomy", "fixtures/tax.yaml",
		"-cases", "fixtures/cases.json",
		"-out", "out/log.json",
		"-keywords", "fixtures/kw.yaml",
		"-model", "gpt-5-mini",
		"-base-url", "",
		"-temperature", "0",
		"-max-output-tokens", "800",
		"-max-cases", "3",
		"-pretty=false",
		"-no-color",
		"-api-key", "k",
	})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.TaxonomyPath != "fixtures/tax.yaml" || cfg.CasesPath != "fixtures/cases.json" {
		t.Fatalf("paths=%q/%q", cfg.TaxonomyPath, cfg.CasesPath)
	}
	if cfg.OutPath != "out/log.json" || cfg.KeywordsPath != "fixtures/kw.yaml" {
		t.Fatalf("out=%q keywords=%q", cfg.OutPath, cfg.KeywordsPath)
	}
	if cfg.Model != "gpt-5-mini" || cfg.BaseURL != "" {
		t.Fatalf("model=%q base=%q", cfg.Model, cfg.BaseURL)
	}
	if cfg.Temperature != 0 || cfg.MaxOutputTokens != 800 || cfg.MaxCases != 3 {
		t.Fatalf("temperature=%v max=%d cases=%d", cfg.Temperature, cfg.MaxOutputTokens, cfg.MaxCases)
	}
	if cfg.Pretty || !cfg.NoColor {
		t.Fatalf("Pretty=%v NoColor=%v", cfg.Pretty, cfg.NoColor)
	}
	if cfg.APIKey != "k" {
		t.Fatalf("APIKey=%q", cfg.APIKey)
	}
}

func TestConfigValidate_Rejections(t *testing.T) {
	t.Parallel()

	base := defaultConfig()

	c := base
	c.TaxonomyPath = ""
	if err := c.Validate(); err == nil {
		t.Fatalf("missing taxonomy: want error")
	}

	c = base
	c.Model = ""
	if err := c.Validate(); err == nil {
		t.Fatalf("missing model: want error")
	}

	c = base
	c.Temperature = 2.5
	if err := c.Validate(); err == nil {
		t.Fatalf("temperature out of range: want error")
	}

	c = base
	c.MaxCases = -1
	if err := c.Validate(); err == nil {
		t.Fatalf("negative max-cases: want error")
	}
}
