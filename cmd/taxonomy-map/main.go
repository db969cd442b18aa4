package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/theimaginaryfoundation/taxonomy-bot/mapper"
	"github.com/theimaginaryfoundation/taxonomy-bot/mapper/provider"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "missing OPENAI_API_KEY or GROQ_API_KEY (or pass -api-key)")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("init logger: %w", err).Error())
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	// Load errors are fatal before any case is processed.
	taxonomy, err := mapper.LoadTaxonomy(cfg.TaxonomyPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	cases, err := mapper.LoadCases(cfg.CasesPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if cfg.MaxCases > 0 && len(cases) > cfg.MaxCases {
		cases = cases[:cfg.MaxCases]
	}

	keywords := mapper.DefaultKeywords()
	if cfg.KeywordsPath != "" {
		keywords, err = mapper.LoadKeywords(cfg.KeywordsPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(2)
		}
	}

	backend, err := provider.New(provider.Config{
		APIKey:          apiKey,
		BaseURL:         cfg.BaseURL,
		Model:           cfg.Model,
		Temperature:     cfg.Temperature,
		MaxOutputTokens: cfg.MaxOutputTokens,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	log, err := mapper.NewResultLog(cfg.OutPath, cfg.Pretty)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	m := &mapper.Mapper{
		Taxonomy: taxonomy,
		Backend:  backend,
		Keywords: keywords,
		Logger:   logger,
	}

	results, metrics, err := m.Run(ctx, cases, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	mapper.WriteReport(os.Stdout, log.RunID(), results, metrics)
	fmt.Fprintf(os.Stdout, "Full details in %s\n", log.Path())
}

// newLogger builds an errors-only logger; per-case degradations are the
// only thing worth logging, the report covers the rest.
func newLogger() (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}
