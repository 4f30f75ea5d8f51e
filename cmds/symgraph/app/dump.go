package app

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symgraph/dot"
)

type Dump struct {
	cmd *cobra.Command

	mainopts *Options
	format   string
	output   string
}

// NewDump creates the dump subcommand: listing in, rendering out.
func NewDump(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <listing-file>",
		Short: "build a symbol graph from a listing and render it",
		Long: `
Reads a symbol listing (one directive per line, see below), builds the
hierarchical symbol graph, and writes the rendering.

Listing directives:

  sym <kind> <name> [<signature>]   record a symbol
  rel <kind> <from> <to>            record a relation
  # ...                             comment

Node kinds: namespace, class, struct, enum, function, method, field,
variable, undefined. Relation kinds: call, usage, type_usage, inheritance
(member is derived from names and cannot be recorded).

Use "-" as the listing file to read from standard input.
`,
		Args: cobra.ExactArgs(1),
	}

	c := &Dump{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.format, "format", "f", "text", "output format (text|dot)")
	flags.StringVarP(&c.output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func (c *Dump) Run(args []string) error {
	in := os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	g, err := ReadListing(in, c.mainopts.delimiter)
	if err != nil {
		return err
	}

	var out io.Writer = c.cmd.OutOrStdout()
	if c.output != "" {
		f, err := os.Create(c.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch c.format {
	case "text":
		_, err = io.WriteString(out, g.String())
		return err
	case "dot":
		return dot.Write(out, g)
	default:
		return fmt.Errorf("unknown output format %q", c.format)
	}
}
