package config

import (
	"testing"

	"github.com/barokit/baro/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errPart string
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "future version rejected",
			mutate:  func(c *Config) { c.Version = CurrentConfigVersion + 1 },
			wantErr: true,
			errPart: "from the future",
		},
		{
			name:    "zero interval rejected",
			mutate:  func(c *Config) { c.Defaults.IntervalMS = 0 },
			wantErr: true,
			errPart: "interval_ms",
		},
		{
			name:    "zero capacity rejected",
			mutate:  func(c *Config) { c.Defaults.Capacity = 0 },
			wantErr: true,
			errPart: "capacity",
		},
		{
			name:    "unknown layout rejected",
			mutate:  func(c *Config) { c.Defaults.Layout = "spiral" },
			wantErr: true,
			errPart: "layout",
		},
		{
			name:    "zero frame rate rejected",
			mutate:  func(c *Config) { c.Defaults.FrameRate = 0 },
			wantErr: true,
			errPart: "frame_rate",
		},
		{
			name:    "negative bar gap rejected",
			mutate:  func(c *Config) { c.Defaults.BarGap = -1 },
			wantErr: true,
			errPart: "negative",
		},
		{
			name: "valid pattern accepted",
			mutate: func(c *Config) {
				c.Patterns = []Pattern{{Name: "latency", Regex: `took ([0-9.]+)ms`}}
			},
			wantErr: false,
		},
		{
			name: "duplicate pattern names rejected",
			mutate: func(c *Config) {
				c.Patterns = []Pattern{
					{Name: "latency", Regex: `took ([0-9.]+)ms`},
					{Name: "latency", Regex: `elapsed ([0-9.]+)`},
				}
			},
			wantErr: true,
			errPart: "defined twice",
		},
		{
			name: "pattern without capture group rejected",
			mutate: func(c *Config) {
				c.Patterns = []Pattern{{Name: "plain", Regex: `no groups here`}}
			},
			wantErr: true,
			errPart: "capture group",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errPart)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePattern(t *testing.T) {
	tests := []struct {
		name     string
		pname    string
		regex    string
		wantErr  bool
		wantCode string
	}{
		{
			name:  "single group",
			pname: "latency",
			regex: `took ([0-9.]+)ms`,
		},
		{
			name:  "multiple groups",
			pname: "reqs",
			regex: `in=([0-9]+) out=([0-9]+)`,
		},
		{
			name:     "empty name",
			pname:    "",
			regex:    `(x)`,
			wantErr:  true,
			wantCode: errors.ErrPattern,
		},
		{
			name:     "name with spaces",
			pname:    "two words",
			regex:    `(x)`,
			wantErr:  true,
			wantCode: errors.ErrPattern,
		},
		{
			name:     "broken regex",
			pname:    "broken",
			regex:    `([unclosed`,
			wantErr:  true,
			wantCode: errors.ErrPattern,
		},
		{
			name:     "no capture groups",
			pname:    "plain",
			regex:    `[0-9]+`,
			wantErr:  true,
			wantCode: errors.ErrPattern,
		},
		{
			name:  "non capturing group does not count",
			pname: "noncap",
			// (?:...) groups don't capture, so this needs to be rejected
			regex:    `(?:[0-9]+)`,
			wantErr:  true,
			wantCode: errors.ErrPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePattern(tt.pname, tt.regex)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, tt.wantCode), "expected code %s, got %v", tt.wantCode, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
