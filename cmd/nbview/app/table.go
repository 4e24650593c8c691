package app

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dkoosis/nbview/pkg/display"
	"github.com/dkoosis/nbview/pkg/render"
)

var tableFormats = []string{"auto", "terminal", "text", "html", "json"}

func (a *app) tableCmd() *cobra.Command {
	var (
		format  string
		maxRows int
		exclude []int
	)
	cmd := &cobra.Command{
		Use:   "table <file.csv>",
		Short: "Display a CSV file as a table",
		Long: `Reads a CSV file ("-" for stdin) into a frame and displays it through the
frame adapter. The output format defaults to a styled table on a terminal and
plain text otherwise.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(tableFormats, format) {
				return fmt.Errorf("%w: invalid --format %q (must be one of %v)", errUsage, format, tableFormats)
			}
			if cmd.Flags().Changed("max-rows") {
				if maxRows < 0 {
					return fmt.Errorf("%w: --max-rows must be >= 0", errUsage)
				}
				a.cfg.Table.MaxRows = maxRows
			}
			t, err := a.readTable(args[0], exclude)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			host, buf := a.host()
			if err := host.Show(t); err != nil {
				return err
			}
			return a.writeTable(buf.Last(), format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "auto", "Output format: auto, terminal, text, html, json")
	cmd.Flags().IntVar(&maxRows, "max-rows", 0, "Maximum rows to print (0 = all)")
	cmd.Flags().IntSliceVar(&exclude, "exclude", nil, "Zero-based column indexes to drop")
	return cmd
}

// writeTable prints a published table bundle in the requested format.
func (a *app) writeTable(b display.Bundle, format string) error {
	if format == "auto" {
		format = "text"
		if a.isTTY() {
			format = "terminal"
		}
	}
	if format == "html" {
		html, ok := b[display.MIMEHTML]
		if !ok {
			return fmt.Errorf("no %s output for this value", display.MIMEHTML)
		}
		_, err := fmt.Fprintln(a.stdout, html)
		return err
	}

	snap, ok := snapshotFrom(b)
	if !ok {
		// Frame adapter unavailable; the registry fell back to plain text.
		_, err := fmt.Fprintln(a.stdout, b[display.MIMEText])
		return err
	}
	r, ok := render.ByName(format, render.ThemeByName(a.cfg.Theme), a.cfg.Table.NullText, a.cfg.Table.MaxRows)
	if !ok {
		return fmt.Errorf("%w: no renderer for format %q", errUsage, format)
	}
	_, err := fmt.Fprint(a.stdout, r.Render(snap))
	return err
}
