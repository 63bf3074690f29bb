package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/unisync/unisync-backend/internal/platform/logger"
)

// table is one CSV file with a header row. Reads treat a missing or
// unparseable file as an empty collection; writes hold the table mutex for
// the whole read-modify-write so an upsert cannot interleave with an append.
// Two processes on the same file still race (last write wins) — that matches
// the storage contract, which promises no durability or isolation.
type table struct {
	path   string
	header []string
	mu     sync.Mutex
	log    *logger.Logger
}

func newTable(dir, name string, header []string, log *logger.Logger) *table {
	return &table{
		path:   filepath.Join(dir, name),
		header: header,
		log:    log.With("table", name),
	}
}

// readRows returns the data rows (header stripped). Never returns an error
// for a missing or corrupt file.
func (t *table) readRows() [][]string {
	f, err := os.Open(t.path)
	if err != nil {
		if !os.IsNotExist(err) {
			t.log.Warn("Could not open table file, treating as empty", "error", err)
		}
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		t.log.Warn("Could not parse table file, treating as empty", "error", err)
		return nil
	}
	if len(rows) == 0 {
		return nil
	}
	return rows[1:]
}

func (t *table) appendRow(row []string) error {
	if err := t.ensureFile(); err != nil {
		return err
	}
	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", t.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		return fmt.Errorf("append row to %s: %w", t.path, err)
	}
	w.Flush()
	return w.Error()
}

// writeRows replaces the whole file (header + rows) via a temp file rename.
func (t *table) writeRows(rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(t.path), filepath.Base(t.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	w := csv.NewWriter(tmp)
	werr := w.Write(t.header)
	for _, row := range rows {
		if werr != nil {
			break
		}
		werr = w.Write(row)
	}
	w.Flush()
	if werr == nil {
		werr = w.Error()
	}
	if cerr := tmp.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", t.path, werr)
	}
	if err := os.Rename(tmpPath, t.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", t.path, err)
	}
	return nil
}

func (t *table) ensureFile() error {
	if _, err := os.Stat(t.path); err == nil {
		return nil
	}
	return t.writeRows(nil)
}
