// taxonomy-lint checks a taxonomy file before a mapping run: schema
// violations, and sub-genres the keyword table gives no shortlist coverage.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theimaginaryfoundation/taxonomy-bot/mapper"
)

type Config struct {
	TaxonomyPath string
	KeywordsPath string
	Strict       bool
}

func (c Config) Validate() error {
	if c.TaxonomyPath == "" {
		return errors.New("missing -taxonomy")
	}
	return nil
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.TaxonomyPath, "taxonomy", "taxonomy.json", "Path to the taxonomy file (.json, .yaml, .yml)")
	fs.StringVar(&cfg.KeywordsPath, "keywords", "", "Optional keyword table file overriding the built-in one")
	fs.BoolVar(&cfg.Strict, "strict", false, "Exit non-zero when any sub-genre lacks keyword coverage")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.TaxonomyPath = filepath.Clean(cfg.TaxonomyPath)
	if cfg.KeywordsPath != "" {
		cfg.KeywordsPath = filepath.Clean(cfg.KeywordsPath)
	}
	return cfg, nil
}

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

	taxonomy, err := mapper.LoadTaxonomy(cfg.TaxonomyPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	keywords := mapper.DefaultKeywords()
	if cfg.KeywordsPath != "" {
		keywords, err = mapper.LoadKeywords(cfg.KeywordsPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
	}

	uncovered := uncoveredLeaves(taxonomy, keywords)

	fmt.Fprintf(os.Stdout, "taxonomy=%s genres=%d leaves=%d uncovered=%d\n",
		cfg.TaxonomyPath, len(taxonomy.Genres()), taxonomy.Len(), len(uncovered))
	for _, path := range uncovered {
		fmt.Fprintf(os.Stdout, "no keyword coverage: %s\n", path)
	}

	if cfg.Strict && len(uncovered) > 0 {
		os.Exit(1)
	}
}

func uncoveredLeaves(t *mapper.Taxonomy, k *mapper.KeywordIndex) []string {
	var out []string
	for _, leaf := range t.Leaves() {
		if !k.Covered(leaf.Subgenre) {
			out = append(out, leaf.Path())
		}
	}
	return out
}
