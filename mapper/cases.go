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

// LoadCases reads an ordered test-case file (JSON array by default,
// .yaml/.yml parsed as YAML). A malformed file is an error — callers treat
// it as fatal before processing begins.
func LoadCases(path string) ([]Request, error) {
	if path == "" {
		return nil, errors.New("LoadCases: path is empty")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadCases: read file: %w", err)
	}

	var cases []Request
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cases); err != nil {
			return nil, fmt.Errorf("LoadCases: parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(b, &cases); err != nil {
			return nil, fmt.Errorf("LoadCases: parse json: %w", err)
		}
	}
	if len(cases) == 0 {
		return nil, errors.New("LoadCases: no cases defined")
	}

	for i := range cases {
		if strings.TrimSpace(cases[i].CaseID) == "" {
			return nil, fmt.Errorf("LoadCases: case %d is missing an id", i+1)
		}
		if strings.TrimSpace(cases[i].Excerpt) == "" {
			return nil, fmt.Errorf("LoadCases: case %q has an empty story snippet", cases[i].CaseID)
		}
	}
	return cases, nil
}
