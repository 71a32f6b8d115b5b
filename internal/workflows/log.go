package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/PolarWolf314/kauri/internal/audit"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	// Limit keeps only the most recent N entries. Zero means all.
	Limit int

	// Reverse lists newest first.
	Reverse bool
}

// LogResult contains audit entries.
type LogResult struct {
	Entries []audit.Entry

	// Total is the number of entries before Limit was applied.
	Total int
}

// Log reads the audit log of the configured store.
//
// Returns ErrNotInitialized if init has not been run.
func Log(ctx context.Context, deps Deps, opts LogOptions) (*LogResult, error) {
	_, s, err := loadStore(deps)
	if err != nil {
		return nil, err
	}

	entries, err := audit.ReadEntries(s.Dir())
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	result := &LogResult{Total: len(entries)}

	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[len(entries)-opts.Limit:]
	}
	if opts.Reverse {
		reversed := make([]audit.Entry, len(entries))
		for i, e := range entries {
			reversed[len(entries)-1-i] = e
		}
		entries = reversed
	}

	result.Entries = entries
	return result, nil
}

// FormatDateTime renders an audit timestamp in local time.
// Unparsable timestamps are returned unchanged.
func FormatDateTime(ts string) string {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
