// Package activity records what a user did during a session.
package activity

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Actions recorded by the session.
const (
	ActionStart    = "session_start"
	ActionNavigate = "navigate"
	ActionAppend   = "append"
	ActionReject   = "confirm_rejected"
	ActionFilter   = "filter"
	ActionExport   = "export"
	ActionEnd      = "session_end"
)

// Entry is one row in the activity log.
type Entry struct {
	Timestamp     time.Time
	Session       string
	Action        string
	Details       string
	TransactionID string
}

// Header is the CSV header for activity log files.
const Header = "timestamp,session,action,details,transaction_id"

const (
	numFields    = 5
	colTimestamp = 0
	colSession   = 1
	colAction    = 2
	colDetails   = 3
	colTxnID     = 4
)

// Recorder collects entries for one session in memory.
type Recorder struct {
	mu      sync.Mutex
	session string
	now     func() time.Time
	entries []Entry
}

// NewRecorder starts a recorder with a fresh session ID. A nil clock means
// time.Now.
func NewRecorder(now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{session: uuid.NewString(), now: now}
}

// Session returns the session ID stamped on every entry.
func (r *Recorder) Session() string {
	return r.session
}

// Record adds an entry. txnID may be empty.
func (r *Recorder) Record(action, details, txnID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{
		Timestamp:     r.now(),
		Session:       r.session,
		Action:        action,
		Details:       details,
		TransactionID: txnID,
	})
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colSession] = e.Session
	row[colAction] = e.Action
	row[colDetails] = e.Details
	row[colTxnID] = e.TransactionID
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp:     ts,
		Session:       record[colSession],
		Action:        record[colAction],
		Details:       record[colDetails],
		TransactionID: record[colTxnID],
	}, nil
}

// Append writes entries to the CSV file at path, creating the file, its
// directory and the header if needed.
func Append(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating activity log dir: %w", err)
	}

	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from the CSV file at path.
// Returns an empty slice if the file does not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading activity log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
