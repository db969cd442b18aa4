package mapper

import (
	"errors"

	"github.com/google/uuid"

	"github.com/theimaginaryfoundation/taxonomy-bot/mapper/fileutils"
)

// ResultLog is the run's reasoning log: a structured record list, one entry
// per processed case. Append keeps the full list in memory and atomically
// rewrites the file after every case, so the on-disk log is always a valid
// JSON array covering everything processed so far. Single-writer by
// design — the batch runner is the only control flow that touches it.
type ResultLog struct {
	path    string
	pretty  bool
	runID   string
	records []Result
}

// NewResultLog creates a log that persists to path. Pretty controls
// indentation of the written JSON.
func NewResultLog(path string, pretty bool) (*ResultLog, error) {
	if path == "" {
		return nil, errors.New("NewResultLog: path is empty")
	}
	return &ResultLog{
		path:   path,
		pretty: pretty,
		runID:  uuid.NewString(),
	}, nil
}

// RunID identifies this run in the printed report.
func (l *ResultLog) RunID() string {
	return l.runID
}

// Append records one result and rewrites the log file.
func (l *ResultLog) Append(r Result) error {
	l.records = append(l.records, r)
	return fileutils.WriteJSONFileAtomic(l.path, l.records, l.pretty)
}

// Records returns the results appended so far.
func (l *ResultLog) Records() []Result {
	out := make([]Result, len(l.records))
	copy(out, l.records)
	return out
}

// Path returns where the log is persisted.
func (l *ResultLog) Path() string {
	return l.path
}
