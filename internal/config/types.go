package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete config.yaml configuration file.
type Config struct {
	Version  int       `yaml:"version" mapstructure:"version"`
	Defaults Defaults  `yaml:"defaults" mapstructure:"defaults"`
	Patterns []Pattern `yaml:"patterns" mapstructure:"patterns"`
}

// Defaults seed the dashboard flags when they are not given on the command line.
type Defaults struct {
	// IntervalMS is the pacing between input reads, in milliseconds.
	IntervalMS int `yaml:"interval_ms" mapstructure:"interval_ms"`

	// Capacity is how many samples each series keeps.
	Capacity int `yaml:"capacity" mapstructure:"capacity"`

	// Layout selects the pane arrangement: "auto", "horizontal", or "vertical".
	Layout string `yaml:"layout" mapstructure:"layout"`

	// FrameRate is how many times per second the dashboard redraws.
	FrameRate float64 `yaml:"frame_rate" mapstructure:"frame_rate"`

	// BarWidth, BarGap, and GroupGap size the rendered bars, in cells.
	BarWidth int `yaml:"bar_width" mapstructure:"bar_width"`
	BarGap   int `yaml:"bar_gap" mapstructure:"bar_gap"`
	GroupGap int `yaml:"group_gap" mapstructure:"group_gap"`

	// Max pins the chart's reference maximum. Zero derives it from the data.
	Max uint64 `yaml:"max" mapstructure:"max"`
}

// Pattern is a persisted named extraction regex.
// Capture groups route to series slots in order.
type Pattern struct {
	Name  string `yaml:"name" mapstructure:"name"`
	Regex string `yaml:"regex" mapstructure:"regex"`
}

// Interval returns the read pacing as a duration.
func (d Defaults) Interval() time.Duration {
	return time.Duration(d.IntervalMS) * time.Millisecond
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Defaults: Defaults{
			IntervalMS: 1000,
			Capacity:   200,
			Layout:     "auto",
			FrameRate:  30,
			BarWidth:   1,
			BarGap:     0,
			GroupGap:   1,
		},
		Patterns: nil,
	}
}

// FindPattern returns the named pattern and whether it exists.
func (c *Config) FindPattern(name string) (Pattern, bool) {
	for _, p := range c.Patterns {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// PatternNames returns the stored pattern names in listing order.
func (c *Config) PatternNames() []string {
	names := make([]string, 0, len(c.Patterns))
	for _, p := range c.Patterns {
		names = append(names, p.Name)
	}
	return names
}

// AddPattern appends a pattern, replacing any existing entry with the same name.
// Returns true if an existing pattern was replaced.
func (c *Config) AddPattern(name, regex string) bool {
	for i, p := range c.Patterns {
		if p.Name == name {
			c.Patterns[i].Regex = regex
			return true
		}
	}
	c.Patterns = append(c.Patterns, Pattern{Name: name, Regex: regex})
	return false
}

// RemovePattern deletes the named pattern. Returns false if it was not stored.
func (c *Config) RemovePattern(name string) bool {
	for i, p := range c.Patterns {
		if p.Name == name {
			c.Patterns = append(c.Patterns[:i], c.Patterns[i+1:]...)
			return true
		}
	}
	return false
}
