// Package app wires the nbview commands.
package app

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/nbview/internal/config"
	"github.com/dkoosis/nbview/internal/detect"
	"github.com/dkoosis/nbview/internal/version"
	"github.com/dkoosis/nbview/pkg/display"
	"github.com/dkoosis/nbview/pkg/frame"
	"github.com/dkoosis/nbview/pkg/grid"
	"github.com/dkoosis/nbview/pkg/notebook"
)

// sniffSize is how much input is inspected to pick a delimiter.
const sniffSize = 16 << 10

// errUsage marks errors that should exit with status 2.
var errUsage = errors.New("usage error")

// app carries state shared by the commands of one invocation.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	flags config.CliFlags
	cfg   *config.ResolvedConfig
	log   *slog.Logger
}

// Run executes nbview with args and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "nbview: %v\n", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

// usageArgs marks positional-argument errors as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return nil
	}
}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "nbview",
		Short:         "Render data frames and charts the way the notebook display adapters do",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.flags.DebugSet = cmd.Flags().Changed("debug")
			return a.init()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.ConfigPath, "config", "", "Path to a config file (default: ./.nbview.yaml or the user config dir)")
	pf.StringVar(&a.flags.Locale, "locale", "", "Locale for number formatting, e.g. en, de, fr-CH")
	pf.StringVar(&a.flags.ThemeName, "theme", "", "Terminal theme: default, orca, mono")
	pf.BoolVar(&a.flags.Debug, "debug", false, "Enable debug logging")

	root.AddCommand(a.tableCmd(), a.chartCmd(), a.viewCmd(), a.versionCmd())
	return root
}

// init resolves configuration and installs the logger.
func (a *app) init() error {
	cfg, err := config.ResolveConfig(a.flags)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	a.cfg = cfg
	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.log)
	a.log.Debug("config resolved",
		"locale", cfg.Locale, "locale_source", cfg.LocaleSource,
		"theme", cfg.Theme, "theme_source", cfg.ThemeSource)
	return nil
}

// host builds a sealed registry with every adapter and a buffer to display into.
func (a *app) host() (*display.Host, *display.Buffer) {
	reg := display.NewRegistry()
	rep := notebook.RegisterAll(reg, a.cfg.NotebookOptions(a.log))
	reg.Seal()
	a.log.Debug("display adapters registered", "kinds", reg.Kinds(), "failed", len(rep.Failed()))
	buf := &display.Buffer{}
	return &display.Host{Registry: reg, Out: buf}, buf
}

// readTable loads a delimited file, or stdin when path is "-". The delimiter
// is sniffed from the leading lines.
func (a *app) readTable(path string, exclude []int) (*frame.Table, error) {
	var r io.Reader = a.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	br := bufio.NewReaderSize(r, sniffSize)
	head, err := br.Peek(sniffSize)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, err
	}
	kind := detect.Sniff(head)
	if kind == detect.JSON {
		return nil, fmt.Errorf("input looks like JSON; expected delimited text")
	}
	a.log.Debug("input sniffed", "path", path, "format", kind)
	return frame.ReadCSV(br, frame.CSVOptions{ExcludeColumns: exclude, Comma: kind.Comma()})
}

// snapshotFrom recovers the grid snapshot from a published bundle.
func snapshotFrom(b display.Bundle) (*grid.Snapshot, bool) {
	data, ok := b[display.MIMEGrid]
	if !ok {
		return nil, false
	}
	var s grid.Snapshot
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, false
	}
	return &s, true
}

func (a *app) isTTY() bool {
	f, ok := a.stdout.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *app) versionCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			if format == "json" {
				out, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(a.stdout, string(out))
				return nil
			}
			fmt.Fprintf(a.stdout, "nbview %s (commit %s, built %s, %s, %s)\n",
				info.Version, info.Commit, info.BuildDate, info.GoVersion, info.Platform)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Output format (json)")
	return cmd
}
