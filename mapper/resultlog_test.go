package mapper

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestResultLog_RewritesValidArrayAfterEachAppend(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "reasoning_log.json")
	log, err := NewResultLog(path, true)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if log.RunID() == "" {
		t.Fatalf("missing run id")
	}

	for i, r := range []Result{
		{CaseID: "TC-001", Category: "Horror/Slasher", Confidence: 0.9},
		{CaseID: "TC-002", Category: Unmapped, Confidence: 0.99},
	} {
		if err := log.Append(r); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}

		// The on-disk file is a complete, valid record list after every case.
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read log: %v", err)
		}
		var records []Result
		if err := json.Unmarshal(b, &records); err != nil {
			t.Fatalf("log not valid JSON after append %d: %v", i, err)
		}
		if len(records) != i+1 {
			t.Fatalf("records=%d, want %d", len(records), i+1)
		}
	}

	if got := log.Records(); len(got) != 2 || got[1].CaseID != "TC-002" {
		t.Fatalf("Records()=%+v", got)
	}
}

func TestRun_AppendsToLogInInputOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	log, err := NewResultLog(filepath.Join(dir, "log.json"), false)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	m := &Mapper{Taxonomy: loadTestTaxonomy(t), Backend: narrativeStub()}
	cases := fixtureCases()
	results, _, err := m.Run(context.Background(), cases, log)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	records := log.Records()
	if len(records) != len(results) {
		t.Fatalf("log records=%d results=%d", len(records), len(results))
	}
	for i := range records {
		if records[i].CaseID != cases[i].CaseID {
			t.Fatalf("record %d is %s, want %s (strict input order)", i, records[i].CaseID, cases[i].CaseID)
		}
	}
}
