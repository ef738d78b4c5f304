package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/devpospicha/pulse/internal/model"
)

// Record is one run as written to the report file.
type Record struct {
	RunID        string              `json:"run_id"`
	Timestamp    time.Time           `json:"timestamp"`
	Snapshot     *model.Snapshot     `json:"snapshot"`
	TopProcesses []model.ProcessInfo `json:"top_processes"`
	Heavy        []model.ProcessInfo `json:"heavy"`
}

// NewRecord stamps a run with a fresh run id.
func NewRecord(snap *model.Snapshot, top, heavy []model.ProcessInfo) *Record {
	return &Record{
		RunID:        uuid.NewString(),
		Timestamp:    snap.Timestamp,
		Snapshot:     snap,
		TopProcesses: top,
		Heavy:        heavy,
	}
}

// WriteToFile replaces filename with rec as one line of JSON, creating the
// directory if needed. The file only ever holds the latest run.
func WriteToFile(rec *Record, filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	file, err := os.OpenFile(filename, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	_, err = file.Write(append(data, '\n'))
	return err
}
