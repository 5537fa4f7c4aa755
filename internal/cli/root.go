package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/barokit/baro/internal/config"
	"github.com/barokit/baro/internal/dash"
	"github.com/barokit/baro/internal/errors"
	"github.com/barokit/baro/internal/logger"
)

// Dashboard flags. Values the user doesn't set are seeded from the defaults
// section of the config file; the flag defaults below only document the
// built-in fallbacks.
var (
	titlesFlag    []string
	unitsFlag     []string
	indicesFlag   []int
	layoutFlag    string
	intervalFlag  string
	capacityFlag  int
	maxFlag       uint64
	barWidthFlag  int
	barGapFlag    int
	groupGapFlag  int
	groupFlag     bool
	patternFlag   string
	frameRateFlag float64
	configFlag    string
	debugFlag     bool
)

var rootCmd = newRootCmd()

// newRootCmd builds the root command. Tests create their own instance so
// flag state doesn't leak between cases.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baro",
		Short: "Live bar charts for numbers piped on stdin",
		Long: `Render a live dashboard of bar charts from numbers arriving on stdin.

baro reads one line per interval and routes the numbers it finds to chart
series. With no mode flags every whitespace-separated number on a line
feeds the chart of its position; --units, --indices and --pattern select
more targeted extraction.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  ?           Help overlay
  l           Cycle layout (auto/horizontal/vertical)
  g           Toggle grouped chart
  b           Toggle braille/block bars
  up/k down/j Select chart
  Enter       Expand selected chart
  Esc         Back

Examples:
  while true; do echo $RANDOM; sleep 0.2; done | baro
  ping example.com | baro --units ms --titles ping
  vmstat 1 | baro --indices 13,14 --titles user,system
  tail -f app.log | baro --pattern latency`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd)
		},
	}

	cmd.Flags().StringSliceVarP(&titlesFlag, "titles", "t", nil, "chart titles, one per series")
	cmd.Flags().StringSliceVarP(&unitsFlag, "units", "u", nil, "route numbers by unit tag, one series per unit")
	cmd.Flags().IntSliceVarP(&indicesFlag, "indices", "i", nil, "route numbers by 1-based column")
	cmd.Flags().StringVar(&patternFlag, "pattern", "", "route numbers through a stored pattern")
	cmd.Flags().StringVarP(&layoutFlag, "layout", "l", "auto", "pane arrangement: auto, horizontal or vertical")
	cmd.Flags().StringVar(&intervalFlag, "interval", "1s", "pause between input reads")
	cmd.Flags().IntVar(&capacityFlag, "capacity", 200, "samples each series keeps")
	cmd.Flags().Uint64Var(&maxFlag, "max", 0, "pin the chart maximum (0 derives it from the data)")
	cmd.Flags().IntVar(&barWidthFlag, "bar-width", 1, "bar width in cells")
	cmd.Flags().IntVar(&barGapFlag, "bar-gap", 0, "gap between bars in cells")
	cmd.Flags().IntVar(&groupGapFlag, "group-gap", 1, "gap between groups in cells")
	cmd.Flags().BoolVarP(&groupFlag, "group", "g", false, "draw all series as labeled groups in one chart")
	cmd.Flags().Float64Var(&frameRateFlag, "frame-rate", 30, "redraws per second")
	cmd.Flags().BoolVar(&debugFlag, "debug", false, "write a debug log to the data directory")
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path")

	return cmd
}

// Execute runs the root command, printing any failure and exiting non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runDashboard wires stdin, the router and the Bubble Tea program together.
func runDashboard(cmd *cobra.Command) error {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New(errors.ErrInput,
			"Nothing is piped into baro",
			"Feed it numbers on stdin, e.g.: while true; do echo $RANDOM; sleep 0.2; done | baro")
	}

	if err := validateModeFlags(unitsFlag, indicesFlag, patternFlag); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(config.ExpandTilde(configFlag))
	if err != nil {
		return err
	}

	settings, err := settingsFromFlags(cmd, cfg)
	if err != nil {
		return err
	}

	if debugFlag {
		// The logger reads its level from the environment.
		os.Setenv("BARO_DEBUG", "1")
		fileLog, closer, err := logger.NewFileLogger(config.LogFile())
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Couldn't open the debug log",
				"Check that "+config.DataDir()+" is writable.")
		}
		defer closer.Close()
		logger.SetDefault(fileLog)
		fileLog.Debug("debug logging enabled, interval=%s capacity=%d", settings.interval, settings.capacity)
	}

	router, err := buildRouter(cfg, settings.capacity)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ingestor := dash.NewIngestor(router, os.Stdin, settings.interval)
	ingestor.Start(ctx)

	model := dash.NewModel(router, ingestor, dash.Options{
		Titles:    titlesFlag,
		Layout:    settings.layout,
		Grouped:   groupFlag,
		Interval:  settings.interval,
		FrameRate: settings.frameRate,
		Max:       settings.max,
		BarWidth:  settings.barWidth,
		BarGap:    settings.barGap,
		GroupGap:  settings.groupGap,
	})

	// Stdin is the data stream, so keys must come from the terminal itself.
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithInputTTY())
	_, err = p.Run()
	return err
}

// buildRouter constructs the router for whichever ingestion mode the flags
// selected: unit tags, explicit columns, a stored pattern, or one series
// per column when nothing was asked for.
func buildRouter(cfg *config.Config, capacity int) (*dash.Router, error) {
	switch {
	case len(unitsFlag) > 0:
		return dash.NewUnitRouter(unitsFlag, capacity)
	case len(indicesFlag) > 0:
		return dash.NewPositionalRouter(indicesFlag, capacity)
	case patternFlag != "":
		p, ok := cfg.FindPattern(patternFlag)
		if !ok {
			return nil, unknownPatternError(cfg, patternFlag)
		}
		return dash.NewPatternRouter(p.Regex, capacity)
	default:
		return dash.NewPositionalRouter(nil, capacity)
	}
}
