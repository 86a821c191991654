// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import "github.com/spf13/cobra"

// Flags holds global common flags across all commands.
type Flags struct {
	Format   string
	Quiet    bool
	Verbose  bool
	NoColor  bool
	DryRun   bool
	Catalog  string
	LogLevel string
}

// AddFlags adds common flags to the root command.
func AddFlags(cmd *cobra.Command, flags *Flags) *Flags {
	if flags == nil {
		flags = &Flags{}
	}

	cmd.PersistentFlags().StringVarP(&flags.Format, "format", "o", "",
		"Output format: table, json, yaml, wide")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false,
		"Minimal output (shortcut for --log-level=warn)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false,
		"Verbose output (shortcut for --log-level=debug)")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false,
		"Disable colored output")
	cmd.PersistentFlags().BoolVar(&flags.DryRun, "dry-run", false,
		"Apply changes in memory without saving the catalog file")
	cmd.PersistentFlags().StringVarP(&flags.Catalog, "catalog", "c", "",
		"Catalog file (default from $APPL_CATALOG or the config file)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "",
		"Log level: trace, debug, info, warn, error (overrides -v/-q)")

	return flags
}

// Parse extracts global flags from the command hierarchy.
// This is useful for subcommands that need to access global flags when
// they weren't passed the flags struct directly.
func Parse(cmd *cobra.Command) *Flags {
	root := cmd.Root()
	pf := root.PersistentFlags()

	format, _ := pf.GetString("format")
	quiet, _ := pf.GetBool("quiet")
	verbose, _ := pf.GetBool("verbose")
	noColor, _ := pf.GetBool("no-color")
	dryRun, _ := pf.GetBool("dry-run")
	catalog, _ := pf.GetString("catalog")
	logLevel, _ := pf.GetString("log-level")

	return &Flags{
		Format:   format,
		Quiet:    quiet,
		Verbose:  verbose,
		NoColor:  noColor,
		DryRun:   dryRun,
		Catalog:  catalog,
		LogLevel: logLevel,
	}
}

// ListFlags holds flags for commands that print entry lists.
type ListFlags struct {
	Limit int
}

// AddListFlags adds list flags to a command.
func AddListFlags(cmd *cobra.Command) *ListFlags {
	flags := &ListFlags{}
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results (0 for no limit)")
	return flags
}
