package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/lcr/internal/config"
	"github.com/standardbeagle/lcr/internal/debug"
	"github.com/standardbeagle/lcr/internal/refactor"
	"github.com/standardbeagle/lcr/internal/rewrite"
	"github.com/standardbeagle/lcr/internal/version"
)

func main() {
	app := &cli.App{
		Name:                   "lcr",
		Usage:                  "Atomic, crash-safe file renames and symbol refactoring",
		Version:                version.Info(),
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Project root directory",
				Value:   ".",
			},
		},
		Commands: []*cli.Command{
			renameCommand(),
			batchCommand(),
			replaceCommand(),
			configCommand(),
		},
	}

	// Errors that reach here are argument-parsing failures; execution
	// failures carry their own exit code via cli.Exit inside the actions.
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func confirmFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   "Preview changes without touching any file",
		},
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "Skip the confirmation prompt",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Emit a machine-readable report",
		},
	}
}

func renameCommand() *cli.Command {
	return &cli.Command{
		Name:      "rename",
		Usage:     "Rename a file and update references to its base name",
		ArgsUsage: "<file> <new_name>",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "content-only",
				Usage: "Update references without moving the file",
			},
			&cli.BoolFlag{
				Name:  "no-content",
				Usage: "Move the file without touching content",
			},
			&cli.BoolFlag{
				Name:  "related",
				Usage: "Also update sibling source files that refer to the old name",
			},
		}, confirmFlags()...),
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("usage: lcr rename <file> <new_name>", 2)
			}
			return runOperation(c, func(eng *refactor.Engine) (refactor.Operation, error) {
				op := refactor.NewRenameOp(eng, c.Args().Get(0), c.Args().Get(1))
				op.ContentOnly = c.Bool("content-only")
				op.NoContent = c.Bool("no-content")
				op.Related = c.Bool("related")
				return op, nil
			})
		},
	}
}

func batchCommand() *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "Rename files whose names match a pattern",
		ArgsUsage: "<pattern> <replacement> <directory> <file_glob>",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:    "recursive",
				Aliases: []string{"R"},
				Usage:   "Descend into subdirectories",
			},
		}, confirmFlags()...),
		Action: func(c *cli.Context) error {
			if c.NArg() != 4 {
				return cli.Exit("usage: lcr batch <pattern> <replacement> <directory> <file_glob>", 2)
			}
			return runOperation(c, func(eng *refactor.Engine) (refactor.Operation, error) {
				return refactor.NewBatchOp(eng,
					c.Args().Get(0), c.Args().Get(1), c.Args().Get(2), c.Args().Get(3),
					c.Bool("recursive"))
			})
		},
	}
}

func replaceCommand() *cli.Command {
	return &cli.Command{
		Name:      "replace",
		Usage:     "Replace a symbol across files matching a glob",
		ArgsUsage: "<old_symbol> <new_symbol>",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "in",
				Usage:    "File glob to search, e.g. '**/*.go'",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "symbol-type",
				Usage: "Narrow to a declaration kind: function, class, variable",
				Value: "auto",
			},
		}, confirmFlags()...),
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("usage: lcr replace <old_symbol> <new_symbol> --in <glob>", 2)
			}
			return runOperation(c, func(eng *refactor.Engine) (refactor.Operation, error) {
				root, err := resolveRoot(c)
				if err != nil {
					return nil, err
				}
				return refactor.NewReplaceOp(eng,
					c.Args().Get(0), c.Args().Get(1), root, c.String("in"),
					rewrite.ParseKind(c.String("symbol-type"))), nil
			})
		},
	}
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage project configuration",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write a default " + config.ConfigFileName,
				Action: func(c *cli.Context) error {
					root, err := resolveRoot(c)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					path, err := config.WriteDefault(root)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Printf("Wrote %s\n", path)
					return nil
				},
			},
			{
				Name:  "show",
				Usage: "Print the resolved configuration",
				Action: func(c *cli.Context) error {
					root, err := resolveRoot(c)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					cfg, err := config.Load(root)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Printf("max_retries     %d\n", cfg.MaxRetries)
					fmt.Printf("retry_delay     %s\n", cfg.RetryDelay)
					fmt.Printf("read_retries    %d\n", cfg.ReadRetries)
					fmt.Printf("max_workers     %d\n", cfg.MaxWorkers)
					fmt.Printf("verify          %v\n", cfg.VerifyAfterWrite)
					for _, ex := range cfg.Exclude {
						fmt.Printf("exclude         %s\n", ex)
					}
					return nil
				},
			},
		},
	}
}

func resolveRoot(c *cli.Context) (string, error) {
	root, err := filepath.Abs(c.String("root"))
	if err != nil {
		return "", fmt.Errorf("failed to resolve root path %q: %w", c.String("root"), err)
	}
	return root, nil
}

// runOperation wires configuration, the engine, and the orchestrator around
// one operation. Argument errors exit 2; execution failures exit 1.
func runOperation(c *cli.Context, build func(*refactor.Engine) (refactor.Operation, error)) error {
	root, err := resolveRoot(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	eng := refactor.NewEngine(cfg)
	op, err := build(eng)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	debug.Log("cli", "running %s\n", op.Describe())
	summary, err := refactor.NewOrchestrator(eng).Run(ctx, op, refactor.Options{
		DryRun: c.Bool("dry-run"),
		Yes:    c.Bool("yes"),
		JSON:   c.Bool("json"),
		Root:   root,
	})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if summary.Failed() {
		return cli.Exit("one or more files failed", 1)
	}
	return nil
}
