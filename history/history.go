package history

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// Ledger is the append-only record of published titles, one per line. Titles
// are never rewritten or deleted; the file only grows.
type Ledger struct {
	path string
}

func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// Load returns all previously published titles in insertion order. A missing
// file is the normal first-run state, not an error.
func (l *Ledger) Load() ([]string, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var titles []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			titles = append(titles, line)
		}
	}
	return titles, nil
}

// Append records one published title, newline-terminated. Callers invoke
// this only after the post is confirmed live.
func (l *Ledger) Append(title string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(title + "\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
