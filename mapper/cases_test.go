package mapper

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCases_Fixture(t *testing.T) {
	t.Parallel()

	cases, err := LoadCases(filepath.Join("testdata", "test_cases.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cases) != 5 {
		t.Fatalf("cases=%d, want 5", len(cases))
	}
	if cases[0].CaseID != "TC-001" || cases[4].CaseID != "TC-005" {
		t.Fatalf("order not preserved: first=%s last=%s", cases[0].CaseID, cases[4].CaseID)
	}
	if len(cases[1].Tags) != 1 || cases[1].Tags[0] != "Action" {
		t.Fatalf("TC-002 tags=%v", cases[1].Tags)
	}
}

func TestLoadCases_YAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "cases.yaml")
	body := `- id: Y-1
  user_tags: [Love]
  story_snippet: They met again after years apart.
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cases, err := LoadCases(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cases) != 1 || cases[0].CaseID != "Y-1" {
		t.Fatalf("cases=%+v", cases)
	}
}

func TestLoadCases_Malformed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	missingID := filepath.Join(dir, "noid.json")
	if err := os.WriteFile(missingID, []byte(`[{"user_tags": [], "story_snippet": "text"}]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadCases(missingID); err == nil {
		t.Fatalf("missing id: want error")
	}

	emptySnippet := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(emptySnippet, []byte(`[{"id": "a", "story_snippet": " "}]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadCases(emptySnippet); err == nil {
		t.Fatalf("empty snippet: want error")
	}

	notArray := filepath.Join(dir, "obj.json")
	if err := os.WriteFile(notArray, []byte(`{"id": "a"}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadCases(notArray); err == nil {
		t.Fatalf("non-array file: want error")
	}

	if _, err := LoadCases(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("missing file: want error")
	}
}
