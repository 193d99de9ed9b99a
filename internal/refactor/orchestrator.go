package refactor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/standardbeagle/lcr/internal/debug"
)

// Options control one orchestrator invocation.
type Options struct {
	// DryRun stops after the preview, touching nothing.
	DryRun bool
	// Yes skips the confirmation prompt.
	Yes bool
	// JSON emits the structured report instead of the human summary.
	JSON bool
	// Root is the directory paths are shown relative to.
	Root string
}

// Orchestrator drives an operation through its phases: a forced dry-run
// analysis, the preview, a confirmation gate, then a recomputed execution
// against a fresh log. Preview and execution are never merged.
type Orchestrator struct {
	eng *Engine

	stdout io.Writer
	stderr io.Writer
	stdin  *os.File
}

// NewOrchestrator wires an orchestrator to the process streams.
func NewOrchestrator(eng *Engine) *Orchestrator {
	return &Orchestrator{eng: eng, stdout: os.Stdout, stderr: os.Stderr, stdin: os.Stdin}
}

// Run executes op per the options and returns the final summary. A non-nil
// error is a validation failure; per-file failures are inside the summary.
func (o *Orchestrator) Run(ctx context.Context, op Operation, opts Options) (*Summary, error) {
	// Analyzing: always dry-run first, whatever the caller asked for.
	previewLog := NewOperationLog()
	if err := op.Apply(ctx, false, previewLog); err != nil {
		return nil, err
	}
	preview := Summarize(previewLog, opts.Root)
	attachSuggestions(op, preview)

	// Previewing.
	if !opts.JSON {
		fmt.Fprintf(o.stdout, "Preview: %s\n", op.Describe())
		preview.WriteHuman(o.stdout)
	}

	if !preview.Actionable() || opts.DryRun {
		if opts.JSON {
			if err := preview.WriteJSON(o.stdout); err != nil {
				return nil, err
			}
		}
		return preview, nil
	}

	// Confirmation gate.
	if !opts.Yes && !o.confirm(op.Describe()) {
		return nil, fmt.Errorf("aborted by user")
	}

	// Executing: fresh log, recomputed from live file state.
	debug.Log("refactor", "executing %s\n", op.Describe())
	execLog := NewOperationLog()
	if err := op.Apply(ctx, true, execLog); err != nil {
		return nil, err
	}
	result := Summarize(execLog, opts.Root)

	// Reporting.
	if opts.JSON {
		if err := result.WriteJSON(o.stdout); err != nil {
			return nil, err
		}
	} else {
		result.WriteHuman(o.stdout)
	}
	return result, nil
}

// confirm asks for approval on an attached terminal. Without one (pipes,
// CI) the gate auto-approves, matching non-interactive expectations.
func (o *Orchestrator) confirm(what string) bool {
	if o.stdin == nil {
		return true
	}
	info, err := o.stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice == 0 {
		return true
	}

	fmt.Fprintf(o.stderr, "Apply %s? [y/N] ", what)
	reader := bufio.NewReader(o.stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func attachSuggestions(op Operation, s *Summary) {
	if sg, ok := op.(interface{ Suggestions() []string }); ok {
		s.Suggestions = sg.Suggestions()
	}
}
