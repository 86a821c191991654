package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/appl/cmd/appl/cmd/assoc"
	"github.com/agentstation/appl/cmd/appl/cmd/create"
	"github.com/agentstation/appl/cmd/appl/cmd/edit"
	"github.com/agentstation/appl/cmd/appl/cmd/export"
	"github.com/agentstation/appl/cmd/appl/cmd/info"
	"github.com/agentstation/appl/cmd/appl/cmd/keys"
	"github.com/agentstation/appl/cmd/appl/cmd/list"
	"github.com/agentstation/appl/cmd/appl/cmd/open"
	"github.com/agentstation/appl/cmd/appl/cmd/reconcile"
	"github.com/agentstation/appl/cmd/appl/cmd/search"
	"github.com/agentstation/appl/cmd/appl/cmd/serve"
	"github.com/agentstation/appl/cmd/appl/cmd/show"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(info.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(search.NewCommand(a))
	rootCmd.AddCommand(show.NewCommand(a))
	rootCmd.AddCommand(keys.NewCommand(a))
	rootCmd.AddCommand(edit.NewSetCommand(a))
	rootCmd.AddCommand(edit.NewTagsCommand(a))
	rootCmd.AddCommand(edit.NewRenameCommand(a))
	rootCmd.AddCommand(open.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(assoc.NewCommand(a))
	rootCmd.AddCommand(reconcile.NewCleanCommand(a))
	rootCmd.AddCommand(reconcile.NewDiscoverCommand(a))
	rootCmd.AddCommand(export.NewCommand(a))
	rootCmd.AddCommand(create.NewCommand(a))
	rootCmd.AddCommand(serve.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.NewVersionCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("appl %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
