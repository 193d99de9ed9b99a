// Package refactor orchestrates rename and replace operations over files,
// always previewing before executing and never letting one file's failure
// abort the rest of a batch.
package refactor

import (
	"sync"
	"time"
)

// RecordKind classifies one entry in an operation log.
type RecordKind uint8

const (
	// Renamed means a file was moved to a new path.
	Renamed RecordKind = iota
	// ContentUpdated means symbol occurrences inside a file were rewritten.
	ContentUpdated
	// CompileCheck carries the advisory syntax check outcome for a file.
	CompileCheck
	// WriteError means a content write failed; the original file is intact.
	WriteError
	// RenameError means a file move failed; the source is intact.
	RenameError
	// NoChanges means the file was inspected and nothing needed doing.
	NoChanges
)

func (k RecordKind) String() string {
	switch k {
	case Renamed:
		return "renamed"
	case ContentUpdated:
		return "content-updated"
	case CompileCheck:
		return "compile-check"
	case WriteError:
		return "write-error"
	case RenameError:
		return "rename-error"
	case NoChanges:
		return "no-changes"
	default:
		return "unknown"
	}
}

// OperationRecord is one append-only log entry. Records exist for reporting
// only; recovery never replays them.
type OperationRecord struct {
	Kind      RecordKind
	Subject   string
	Detail    string
	Timestamp time.Time
}

// FileChange summarizes the outcome for one file, rolled into the
// structured report for CI consumers.
type FileChange struct {
	Path        string `json:"path"`
	NewPath     string `json:"new_path,omitempty"`
	Backend     string `json:"backend"`
	Changes     uint   `json:"changes"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

// OperationLog accumulates records for one orchestration pass. Batch
// workers append concurrently, so every method takes the mutex.
type OperationLog struct {
	mu      sync.Mutex
	records []OperationRecord
	files   []FileChange
}

// NewOperationLog returns an empty log.
func NewOperationLog() *OperationLog {
	return &OperationLog{}
}

// Add appends one record with the current time.
func (l *OperationLog) Add(kind RecordKind, subject, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, OperationRecord{
		Kind:      kind,
		Subject:   subject,
		Detail:    detail,
		Timestamp: time.Now(),
	})
}

// AddFile appends one per-file outcome for the structured report.
func (l *OperationLog) AddFile(fc FileChange) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.files = append(l.files, fc)
}

// Records returns a copy of the accumulated records.
func (l *OperationLog) Records() []OperationRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]OperationRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Files returns a copy of the accumulated per-file outcomes.
func (l *OperationLog) Files() []FileChange {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]FileChange, len(l.files))
	copy(out, l.files)
	return out
}

// CountByKind tallies records per kind.
func (l *OperationLog) CountByKind() map[RecordKind]int {
	l.mu.Lock()
	defer l.mu.Unlock()
	counts := make(map[RecordKind]int)
	for _, r := range l.records {
		counts[r.Kind]++
	}
	return counts
}

// Len returns the number of records.
func (l *OperationLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
