package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dkoosis/nbview/internal/viewer"
)

func (a *app) viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <file.csv>",
		Short: "Browse a CSV file in an interactive table",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.readTable(args[0], nil)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			host, buf := a.host()
			if err := host.Show(t); err != nil {
				return err
			}
			snap, ok := snapshotFrom(buf.Last())
			if !ok {
				return errors.New("frame adapter unavailable")
			}
			m := viewer.New(filepath.Base(args[0]), snap, a.cfg.Table.NullText, 20)
			return viewer.Run(cmd.Context(), m)
		},
	}
}
