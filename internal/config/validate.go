package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/barokit/baro/internal/errors"
)

// validLayouts are the accepted values for defaults.layout.
var validLayouts = map[string]bool{
	"auto":       true,
	"horizontal": true,
	"vertical":   true,
}

// Validate checks the config for errors and returns structured error messages.
// A config that fails validation must not reach the dashboard.
func (c *Config) Validate() error {
	if c.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but baro only knows up to %d)", c.Version, CurrentConfigVersion),
			"Grab the latest baro release, or remove the version field.")
	}

	if c.Defaults.IntervalMS < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("defaults.interval_ms must be at least 1, got %d", c.Defaults.IntervalMS),
			"Use 1000 for one read per second.")
	}

	if c.Defaults.Capacity < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("defaults.capacity must be at least 1, got %d", c.Defaults.Capacity),
			"Each series needs room for at least one sample. 200 is the usual choice.")
	}

	if !validLayouts[c.Defaults.Layout] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("defaults.layout '%s' is not a layout", c.Defaults.Layout),
			"Pick one of: auto, horizontal, vertical.")
	}

	if c.Defaults.FrameRate <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("defaults.frame_rate must be positive, got %g", c.Defaults.FrameRate),
			"30 redraws per second is plenty for a terminal.")
	}

	if c.Defaults.BarWidth < 0 || c.Defaults.BarGap < 0 || c.Defaults.GroupGap < 0 {
		return errors.New(errors.ErrConfig,
			"Bar sizing values cannot be negative",
			"Check defaults.bar_width, defaults.bar_gap, and defaults.group_gap.")
	}

	seen := make(map[string]bool)
	for _, p := range c.Patterns {
		if err := ValidatePattern(p.Name, p.Regex); err != nil {
			return err
		}
		if seen[p.Name] {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Pattern '%s' is defined twice", p.Name),
				"Pattern names must be unique. Remove one of the entries.")
		}
		seen[p.Name] = true
	}

	return nil
}

// ValidatePattern checks a single named pattern: the name must be a plain
// word and the regex must compile with at least one capture group, since
// capture groups are what route values to series.
func ValidatePattern(name, regex string) error {
	if name == "" {
		return errors.New(errors.ErrPattern,
			"Pattern name cannot be empty",
			"Give the pattern a short name like 'latency'.")
	}
	if strings.ContainsAny(name, " \t") {
		return errors.New(errors.ErrPattern,
			fmt.Sprintf("Pattern name '%s' contains whitespace", name),
			"Use a single word; it is passed to --pattern on the command line.")
	}

	re, err := regexp.Compile(regex)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrPattern,
			fmt.Sprintf("Pattern '%s' does not compile", name),
			"Check the regular expression syntax.")
	}

	if re.NumSubexp() < 1 {
		return errors.New(errors.ErrPattern,
			fmt.Sprintf("Pattern '%s' has no capture groups", name),
			"Wrap the number you want to chart in parentheses, e.g. 'took ([0-9.]+)ms'.")
	}

	return nil
}
