package mapper

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Unmapped is the sentinel category meaning no taxonomy leaf applies.
const Unmapped = "UNMAPPED"

// Leaf is a single Genre/Sub-genre classification target.
type Leaf struct {
	Genre    string
	Subgenre string
}

// Path returns the canonical "Genre/Sub-genre" form used for validation
// and in prompts.
func (l Leaf) Path() string {
	return l.Genre + "/" + l.Subgenre
}

// Taxonomy is the closed two-level Genre → Sub-genre tree. It is built once
// at load time and never mutated afterwards. Leaf paths are unique, and so
// are bare sub-genre names across the whole tree.
type Taxonomy struct {
	genres []string
	leaves []Leaf

	// byKey maps normalized leaf paths AND normalized bare sub-genre names
	// to the canonical leaf path. Bare names resolve only because sub-genre
	// uniqueness is enforced at construction.
	byKey map[string]string
	exact map[string]struct{}
}

// NewTaxonomy builds a Taxonomy from a genre → sub-genres mapping.
// Genres are ordered alphabetically; sub-genres keep the given order.
func NewTaxonomy(tree map[string][]string) (*Taxonomy, error) {
	if len(tree) == 0 {
		return nil, errors.New("taxonomy: no genres defined")
	}

	genres := make([]string, 0, len(tree))
	for g := range tree {
		if strings.TrimSpace(g) == "" {
			return nil, errors.New("taxonomy: empty genre name")
		}
		genres = append(genres, g)
	}
	sort.Strings(genres)

	t := &Taxonomy{
		genres: genres,
		byKey:  make(map[string]string),
		exact:  make(map[string]struct{}),
	}

	for _, genre := range genres {
		subs := tree[genre]
		if len(subs) == 0 {
			return nil, fmt.Errorf("taxonomy: genre %q has no sub-genres", genre)
		}
		for _, sub := range subs {
			if strings.TrimSpace(sub) == "" {
				return nil, fmt.Errorf("taxonomy: genre %q has an empty sub-genre", genre)
			}
			leaf := Leaf{Genre: genre, Subgenre: sub}
			path := leaf.Path()
			if _, dup := t.exact[path]; dup {
				return nil, fmt.Errorf("taxonomy: duplicate leaf %q", path)
			}

			pathKey := normalizeCategoryKey(path)
			nameKey := normalizeCategoryKey(sub)
			if prev, dup := t.byKey[nameKey]; dup {
				return nil, fmt.Errorf("taxonomy: sub-genre %q collides with %q", path, prev)
			}
			if prev, dup := t.byKey[pathKey]; dup {
				return nil, fmt.Errorf("taxonomy: leaf %q collides with %q", path, prev)
			}

			t.leaves = append(t.leaves, leaf)
			t.exact[path] = struct{}{}
			t.byKey[pathKey] = path
			t.byKey[nameKey] = path
		}
	}
	return t, nil
}

// LoadTaxonomy reads a taxonomy file. JSON by default; .yaml/.yml files are
// parsed as YAML. Any schema violation is an error — callers treat it as
// fatal before any case is processed.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	if path == "" {
		return nil, errors.New("LoadTaxonomy: path is empty")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadTaxonomy: read file: %w", err)
	}

	var tree map[string][]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &tree); err != nil {
			return nil, fmt.Errorf("LoadTaxonomy: parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(b, &tree); err != nil {
			return nil, fmt.Errorf("LoadTaxonomy: parse json: %w", err)
		}
	}

	t, err := NewTaxonomy(tree)
	if err != nil {
		return nil, fmt.Errorf("LoadTaxonomy: %w", err)
	}
	return t, nil
}

// Genres returns the genre names in stable order.
func (t *Taxonomy) Genres() []string {
	out := make([]string, len(t.genres))
	copy(out, t.genres)
	return out
}

// Leaves returns all leaves in stable order.
func (t *Taxonomy) Leaves() []Leaf {
	out := make([]Leaf, len(t.leaves))
	copy(out, t.leaves)
	return out
}

// LeafPaths returns every canonical leaf path in stable order.
func (t *Taxonomy) LeafPaths() []string {
	out := make([]string, 0, len(t.leaves))
	for _, l := range t.leaves {
		out = append(out, l.Path())
	}
	return out
}

// Contains reports whether path is verbatim one of the taxonomy's leaf paths.
func (t *Taxonomy) Contains(path string) bool {
	_, ok := t.exact[path]
	return ok
}

// Len returns the number of leaves.
func (t *Taxonomy) Len() int {
	return len(t.leaves)
}

// normalizeCategoryKey folds a category string for tolerant comparison:
// lowercase, whitespace collapsed, segments trimmed around "/". Nothing
// fuzzier than that — near-misses beyond case and spacing stay misses.
func normalizeCategoryKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	parts := strings.Split(s, "/")
	for i, p := range parts {
		parts[i] = strings.Join(strings.Fields(p), " ")
	}
	return strings.Join(parts, "/")
}
