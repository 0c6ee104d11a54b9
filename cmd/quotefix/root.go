package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/quotefix/quotefix"
	"github.com/quotefix/quotefix/internal/config"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Tests call it to get a fresh set of flags.
func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		dryRun     bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "quotefix [path]",
		Short: "Repair the escaped apology literal in src/App.tsx",
		Long: `quotefix rewrites the chat fallback message
  content: 'I\\'m sorry, ...'
into a valid double-quoted string literal and writes the file back.
Files without the broken literal are left untouched.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(logger)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveTarget(args, configPath)
			if err != nil {
				return err
			}

			res, err := quotefix.Fix(cmd.Context(), target,
				quotefix.WithLogger(slog.Default()),
				quotefix.WithDryRun(dryRun),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case res.Changed && res.DryRun:
				fmt.Fprintf(out, "Would fix %s\n", res.Path)
			case res.Changed:
				fmt.Fprintf(out, "Fixed %s\n", res.Path)
			default:
				fmt.Fprintf(out, "No changes needed in %s\n", res.Path)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report the fix without writing the file")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default ./"+config.FileName+")")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// resolveTarget picks the file to fix: positional argument, then config, then default.
func resolveTarget(args []string, configPath string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	var (
		cfg config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return "", err
	}
	return cfg.Target, nil
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
