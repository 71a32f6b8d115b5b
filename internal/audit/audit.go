package audit

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FileName is the audit log's name inside the store directory.
const FileName = ".audit.jsonl"

// Operations recorded in the log.
const (
	OpInit = "init"
	OpNew  = "new"
	OpRead = "read"
	OpCopy = "copy"
)

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"`
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Operation string `json:"op"`

	Entry string `json:"entry,omitempty"` // Secret name, for new/read/copy.
	Key   string `json:"key,omitempty"`   // Key id, for init/new.
}

// Path returns the audit log path for a store directory.
func Path(storeDir string) string {
	return filepath.Join(storeDir, FileName)
}

// Log appends entry to the store's audit log.
// Failures are swallowed: an operation never fails because of auditing.
func Log(storeDir string, entry Entry) {
	if storeDir == "" {
		return
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	f, err := os.OpenFile(Path(storeDir), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads every entry in the store's audit log.
// A missing log yields no entries and no error.
func ReadEntries(storeDir string) ([]Entry, error) {
	data, err := os.ReadFile(Path(storeDir))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines data. Malformed lines are skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
