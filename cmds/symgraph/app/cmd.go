// Package app assembles the symgraph command tree: a root command carrying
// the shared options and a dump subcommand turning a symbol listing into a
// graph rendering.
package app

import (
	"github.com/mandelsoft/logging"
	"github.com/spf13/cobra"
)

// Options are the settings shared by all subcommands.
type Options struct {
	delimiter string
	logLevel  string
}

// New builds the root command.
func New() *cobra.Command {
	opts := &Options{
		delimiter: "::",
		logLevel:  "warn",
	}

	maincmd := &cobra.Command{
		Use:   "symgraph <options> <cmd> <args>",
		Short: "build and render symbol graphs",
		Long: `
This command reads a plain symbol listing, builds the hierarchical
symbol graph, and renders it as a textual dump or Graphviz DOT.
`,
		Run:              nil,
		TraverseChildren: true,
		SilenceUsage:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.applyLogLevel()
		},
	}

	flags := maincmd.PersistentFlags()
	flags.StringVarP(&opts.delimiter, "delimiter", "d", opts.delimiter, "namespace delimiter")
	flags.StringVarP(&opts.logLevel, "log-level", "L", opts.logLevel, "log level for symgraph realms")

	maincmd.AddCommand(NewDump(opts))
	return maincmd
}

// applyLogLevel routes the chosen level to every symgraph realm.
func (o *Options) applyLogLevel() error {
	l, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	lctx := logging.DefaultContext()
	lctx.AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("symgraph")))
	return nil
}
