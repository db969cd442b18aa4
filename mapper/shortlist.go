package mapper

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeywordIndex maps sub-genre names to the lowercase keyword patterns that
// signal them. It drives the advisory shortlist — a hint for the classifier,
// never a decision.
type KeywordIndex struct {
	patterns map[string][]string
}

// DefaultKeywords returns the built-in keyword table. Not every sub-genre
// has coverage; taxonomy-lint reports the gaps.
func DefaultKeywords() *KeywordIndex {
	return &KeywordIndex{patterns: map[string][]string{
		"Enemies-to-Lovers":    {"enemy", "enemies", "rival", "hate", "tension"},
		"Slow-burn":            {"slow", "gradual", "years", "patience"},
		"Second Chance":        {"again", "reunite", "years later", "return", "ex-"},
		"Espionage":            {"spy", "agent", "intelligence", "covert", "cia", "mi6"},
		"Psychological":        {"mind", "obsession", "paranoia", "sanity"},
		"Legal Thriller":       {"lawyer", "court", "trial", "judge", "verdict"},
		"Hard Sci-Fi":          {"physics", "quantum", "engineering", "stasis"},
		"Space Opera":          {"galaxy", "empire", "fleet", "interstellar"},
		"Cyberpunk":            {"cyber", "neon", "hacker", "dystopia", "ai"},
		"Psychological Horror": {"terror", "madness", "fear", "nightmare"},
		"Gothic":               {"mansion", "haunted", "fog", "castle", "shadows"},
		"Slasher":              {"killer", "murder", "blood", "stalks", "masked"},
	}}
}

// LoadKeywords reads a sub-genre → keywords table from a JSON or YAML file,
// so deployments can extend coverage without rebuilding.
func LoadKeywords(path string) (*KeywordIndex, error) {
	if path == "" {
		return nil, errors.New("LoadKeywords: path is empty")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadKeywords: read file: %w", err)
	}

	var patterns map[string][]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &patterns); err != nil {
			return nil, fmt.Errorf("LoadKeywords: parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(b, &patterns); err != nil {
			return nil, fmt.Errorf("LoadKeywords: parse json: %w", err)
		}
	}
	if len(patterns) == 0 {
		return nil, errors.New("LoadKeywords: no patterns defined")
	}

	lowered := make(map[string][]string, len(patterns))
	for sub, kws := range patterns {
		for _, kw := range kws {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			lowered[sub] = append(lowered[sub], kw)
		}
	}
	return &KeywordIndex{patterns: lowered}, nil
}

// Covered reports whether a sub-genre has at least one keyword pattern.
func (k *KeywordIndex) Covered(subgenre string) bool {
	return len(k.patterns[subgenre]) > 0
}

// Shortlist scans the excerpt for keyword signals and returns the candidate
// leaf paths (in taxonomy order) plus the patterns that matched. An empty
// result is normal, not an error; the pipeline still consults the classifier.
func (k *KeywordIndex) Shortlist(t *Taxonomy, excerpt string) (candidates []string, matched []string) {
	haystack := strings.ToLower(excerpt)
	seen := make(map[string]struct{})

	for _, leaf := range t.Leaves() {
		hit := false
		for _, kw := range k.patterns[leaf.Subgenre] {
			if !strings.Contains(haystack, kw) {
				continue
			}
			hit = true
			if _, dup := seen[kw]; !dup {
				seen[kw] = struct{}{}
				matched = append(matched, kw)
			}
		}
		if hit {
			candidates = append(candidates, leaf.Path())
		}
	}
	return candidates, matched
}
