package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkoosis/nbview/pkg/chart"
	"github.com/dkoosis/nbview/pkg/display"
)

func (a *app) chartCmd() *cobra.Command {
	var (
		kind         string
		x, id, title string
		ys           []string
	)
	cmd := &cobra.Command{
		Use:   "chart <file.csv>",
		Short: "Print the HTML a notebook would embed for a chart",
		Long: `Prints one script element followed by one div, as a notebook host embeds it.
Inline SVG charts draw once the document has loaded, so the output also works as
a standalone page. Google charts need network access to load the charts library.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind == "" {
				return fmt.Errorf("%w: --kind is required", errUsage)
			}
			k, err := chart.ParseKind(kind)
			if err != nil {
				return fmt.Errorf("%w: %v", errUsage, err)
			}
			if x == "" || len(ys) == 0 {
				return fmt.Errorf("%w: --x and --y are required", errUsage)
			}
			if width, height := a.flags.Width, a.flags.Height; width < 0 || height < 0 || (width > 0) != (height > 0) {
				return fmt.Errorf("%w: --width and --height must be given together as positive values", errUsage)
			}
			t, err := a.readTable(args[0], nil)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			c, err := chart.FromTable(k, t, x, ys, chart.Options{ID: id, Title: title})
			if err != nil {
				return err
			}

			host, buf := a.host()
			if err := host.Show(c); err != nil {
				return err
			}
			html, ok := buf.Last()[display.MIMEHTML]
			if !ok {
				return fmt.Errorf("no chart adapter registered for %s", k)
			}
			_, err = fmt.Fprintln(a.stdout, html)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&kind, "kind", "", "Chart kind: google, category, xy, pie")
	f.StringVar(&x, "x", "", "Domain column")
	f.StringSliceVar(&ys, "y", nil, "Value column(s), comma separated")
	f.StringVar(&id, "id", "", "Element id the chart script draws into")
	f.StringVar(&title, "title", "", "Chart title")
	f.IntVar(&a.flags.Width, "width", 0, "Display width in pixels (overrides chart.width)")
	f.IntVar(&a.flags.Height, "height", 0, "Display height in pixels (overrides chart.height)")
	return cmd
}
