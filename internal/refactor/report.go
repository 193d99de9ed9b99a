package refactor

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/standardbeagle/lcr/pkg/pathutil"
)

// Summary aggregates one orchestration run for reporting.
type Summary struct {
	Records     []OperationRecord
	Files       []FileChange
	Counts      map[RecordKind]int
	Suggestions []string

	// Root relativizes paths in human output.
	Root string
}

// Summarize folds an operation log into a Summary.
func Summarize(log *OperationLog, root string) *Summary {
	return &Summary{
		Records: log.Records(),
		Files:   log.Files(),
		Counts:  log.CountByKind(),
		Root:    root,
	}
}

// Actionable reports whether the preview contains work worth executing.
func (s *Summary) Actionable() bool {
	return s.Counts[Renamed] > 0 || s.Counts[ContentUpdated] > 0
}

// Failed reports whether any file failed. The process exit code follows this.
func (s *Summary) Failed() bool {
	return s.Counts[WriteError] > 0 || s.Counts[RenameError] > 0
}

// WriteHuman prints the per-file records and a counts line.
func (s *Summary) WriteHuman(w io.Writer) {
	for _, r := range s.Records {
		subject := pathutil.ToRelative(r.Subject, s.Root)
		fmt.Fprintf(w, "  %-15s %s  %s\n", r.Kind, subject, r.Detail)
	}

	if len(s.Records) == 0 {
		fmt.Fprintln(w, "Nothing to do.")
	} else {
		fmt.Fprintf(w, "Summary: %d renamed, %d updated, %d unchanged, %d failed\n",
			s.Counts[Renamed], s.Counts[ContentUpdated], s.Counts[NoChanges],
			s.Counts[WriteError]+s.Counts[RenameError])
	}

	if len(s.Suggestions) > 0 {
		fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(s.Suggestions, ", "))
	}
}

// jsonReport is the machine-readable report shape for CI consumers.
type jsonReport struct {
	Processed   int            `json:"processed"`
	Failed      int            `json:"failed"`
	Unchanged   int            `json:"unchanged"`
	Files       []FileChange   `json:"files"`
	Suggestions []string       `json:"suggestions,omitempty"`
	Counts      map[string]int `json:"counts"`
}

// WriteJSON emits the structured report.
func (s *Summary) WriteJSON(w io.Writer) error {
	counts := make(map[string]int, len(s.Counts))
	for kind, n := range s.Counts {
		counts[kind.String()] = n
	}
	files := s.Files
	if files == nil {
		files = []FileChange{}
	}
	rep := jsonReport{
		Processed:   len(s.Files),
		Failed:      s.Counts[WriteError] + s.Counts[RenameError],
		Unchanged:   s.Counts[NoChanges],
		Files:       files,
		Suggestions: s.Suggestions,
		Counts:      counts,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
