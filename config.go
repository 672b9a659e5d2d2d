package countdown

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the knobs of a mounted countdown. The zero value is not
// usable, start from DefaultConfig.
type Config struct {
	// Interval between two generated values.
	Interval time.Duration `yaml:"interval"`
	// Tick is the countdown step.
	Tick time.Duration `yaml:"tick"`
	// Start is the value the countdown resets to.
	Start int `yaml:"start"`

	// Generated values fall in [Min, Min+Span).
	Min  int `yaml:"min"`
	Span int `yaml:"span"`

	// ClampAtZero keeps the countdown from going negative.
	ClampAtZero bool `yaml:"clamp_at_zero"`

	// Seed of the value randomizer, 0 seeds from the current time.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns a 10s interval, a countdown from 10 and values in [1000, 10000).
func DefaultConfig() Config {
	return Config{
		Interval: DefaultInterval,
		Tick:     DefaultTick,
		Start:    DefaultStart,
		Min:      DefaultMin,
		Span:     DefaultSpan,
	}
}

// LoadConfig reads a YAML file over the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	// an empty file keeps every default
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Wrapf(err, "decoding config %s", path)
	}

	return cfg, cfg.Validate()
}

// Validate rejects non-positive durations, starts and spans.
func (c Config) Validate() error {
	switch {
	case c.Interval <= 0:
		return errors.Errorf("interval must be positive, got %s", c.Interval)
	case c.Tick <= 0:
		return errors.Errorf("tick must be positive, got %s", c.Tick)
	case c.Start <= 0:
		return errors.Errorf("start must be positive, got %d", c.Start)
	case c.Span <= 0:
		return errors.Errorf("span must be positive, got %d", c.Span)
	}

	return nil
}
