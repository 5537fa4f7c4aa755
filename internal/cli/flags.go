package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/barokit/baro/internal/config"
	"github.com/barokit/baro/internal/dash"
	"github.com/barokit/baro/internal/errors"
)

// dashboardSettings holds the resolved display configuration: config file
// defaults with any flag the user set layered on top.
type dashboardSettings struct {
	interval  time.Duration
	capacity  int
	layout    dash.LayoutMode
	frameRate float64
	max       uint64
	barWidth  int
	barGap    int
	groupGap  int
}

// settingsFromFlags merges the command's changed flags over cfg's defaults.
// Flags the user never touched keep the config values, so a flag default
// never shadows a customized config file.
func settingsFromFlags(cmd *cobra.Command, cfg *config.Config) (dashboardSettings, error) {
	s := dashboardSettings{
		interval:  cfg.Defaults.Interval(),
		capacity:  cfg.Defaults.Capacity,
		frameRate: cfg.Defaults.FrameRate,
		max:       cfg.Defaults.Max,
		barWidth:  cfg.Defaults.BarWidth,
		barGap:    cfg.Defaults.BarGap,
		groupGap:  cfg.Defaults.GroupGap,
	}

	f := cmd.Flags()

	if f.Changed("interval") {
		d, err := parseInterval(intervalFlag)
		if err != nil {
			return s, err
		}
		s.interval = d
	}

	if f.Changed("capacity") {
		if capacityFlag < 1 {
			return s, errors.New(errors.ErrConfig,
				fmt.Sprintf("--capacity must be at least 1, got %d", capacityFlag),
				"Each series needs room for at least one sample.")
		}
		s.capacity = capacityFlag
	}

	if f.Changed("frame-rate") {
		if frameRateFlag <= 0 {
			return s, errors.New(errors.ErrConfig,
				fmt.Sprintf("--frame-rate must be positive, got %g", frameRateFlag),
				"30 redraws per second is plenty for a terminal.")
		}
		s.frameRate = frameRateFlag
	}

	if f.Changed("max") {
		s.max = maxFlag
	}
	if f.Changed("bar-width") {
		s.barWidth = barWidthFlag
	}
	if f.Changed("bar-gap") {
		s.barGap = barGapFlag
	}
	if f.Changed("group-gap") {
		s.groupGap = groupGapFlag
	}
	if s.barWidth < 0 || s.barGap < 0 || s.groupGap < 0 {
		return s, errors.New(errors.ErrConfig,
			"Bar sizing values cannot be negative",
			"Check --bar-width, --bar-gap and --group-gap.")
	}

	layoutName := cfg.Defaults.Layout
	if f.Changed("layout") {
		layoutName = layoutFlag
	}
	mode, err := dash.ParseLayoutMode(layoutName)
	if err != nil {
		return s, err
	}
	s.layout = mode

	return s, nil
}

// validateModeFlags checks that at most one ingestion mode is selected.
// The modes disagree about what a series even is, so mixing them has no
// sensible meaning.
func validateModeFlags(units []string, indices []int, pattern string) error {
	modes := 0
	if len(units) > 0 {
		modes++
	}
	if len(indices) > 0 {
		modes++
	}
	if pattern != "" {
		modes++
	}
	if modes > 1 {
		return errors.New(errors.ErrConfig,
			"--units, --indices and --pattern are mutually exclusive",
			"Pick one way of extracting numbers per run.")
	}
	return nil
}

// parseInterval parses the --interval flag. Anything below a millisecond
// is rejected rather than clamped.
func parseInterval(flag string) (time.Duration, error) {
	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 250ms, 1s, or 2m.")
	}
	if d < time.Millisecond {
		return 0, errors.New(errors.ErrConfig,
			fmt.Sprintf("Interval %s is too short", d),
			"Use 1ms or more; faster reads just burn CPU.")
	}
	return d, nil
}

// unknownPatternError reports a --pattern name that isn't stored, listing
// what is.
func unknownPatternError(cfg *config.Config, name string) error {
	names := cfg.PatternNames()
	if len(names) == 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Pattern '%s' not found", name),
			"No patterns are stored yet. Add one with 'baro pattern add'.")
	}
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("Pattern '%s' not found", name),
		"Stored patterns: "+strings.Join(names, ", "))
}
