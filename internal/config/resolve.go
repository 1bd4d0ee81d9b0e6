package config

import (
	"fmt"

	"github.com/abhisek/soroban/internal/session"
)

// Overrides are practice values given on the command line. A nil field
// was not set.
type Overrides struct {
	Preset   *string
	Interval *float64
	Count    *int
	Min      *int
	Max      *int
	Free     *bool
	Voice    *bool
	ShowSum  *bool
}

// Resolve merges, lowest priority first: base (the stored preferences),
// the config file, then the command line. A preset replaces the numeric
// settings of everything below it; individual values then override the
// preset. The result is validated.
func Resolve(base session.Config, file FileConfig, flags Overrides) (session.Config, error) {
	cfg := base

	fromFile := Overrides{
		Preset:   file.Practice.Preset,
		Interval: file.Practice.Interval,
		Count:    file.Practice.Count,
		Min:      file.Practice.Min,
		Max:      file.Practice.Max,
		Free:     file.Practice.Free,
		Voice:    file.Voice.Enabled,
		ShowSum:  file.Practice.ShowSum,
	}
	for _, o := range []Overrides{fromFile, flags} {
		var err error
		if cfg, err = apply(cfg, o); err != nil {
			return session.Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return session.Config{}, err
	}
	return cfg, nil
}

func apply(cfg session.Config, o Overrides) (session.Config, error) {
	if o.Preset != nil {
		p, ok := LookupPreset(*o.Preset)
		if !ok {
			return cfg, fmt.Errorf("%w: unknown preset %q (want one of %s)", session.ErrInvalidConfig, *o.Preset, presetList())
		}
		cfg.TimeBetweenNumbers = p.Config.TimeBetweenNumbers
		cfg.NumberOfNumbers = p.Config.NumberOfNumbers
		cfg.MinNumber = p.Config.MinNumber
		cfg.MaxNumber = p.Config.MaxNumber
	}
	set(&cfg.TimeBetweenNumbers, o.Interval)
	set(&cfg.NumberOfNumbers, o.Count)
	set(&cfg.MinNumber, o.Min)
	set(&cfg.MaxNumber, o.Max)
	set(&cfg.VoiceEnabled, o.Voice)
	set(&cfg.ShowRealTimeSum, o.ShowSum)
	if o.Free != nil {
		switch {
		case *o.Free:
			cfg.NumberOfNumbers = session.FreeMode
		case cfg.IsFreeMode():
			cfg.NumberOfNumbers = session.DefaultConfig().NumberOfNumbers
		}
	}
	return cfg, nil
}

func set[T any](target *T, value *T) {
	if value != nil {
		*target = *value
	}
}
