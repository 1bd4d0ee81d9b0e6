package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/soroban/internal/config"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	Example: `  soroban play --preset advanced
  soroban play --count 20 --interval 1.5 --min 10 --max 99
  soroban play --free --voice`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, true)
	},
}

func init() {
	f := playCmd.Flags()
	f.String("preset", "", "Difficulty preset: beginner, intermediate, advanced, pro, free, tutorial")
	f.Int("count", 0, "Numbers per session")
	f.Float64("interval", 0, "Seconds each number stays on screen")
	f.Int("min", 0, "Smallest number shown")
	f.Int("max", 0, "Largest number shown")
	f.Bool("free", false, "Run until stopped")
	f.Bool("voice", false, "Read numbers aloud")
	f.Bool("sum", false, "Show the running total")
}

// practiceOverrides collects the play flags the user actually set. The
// root command has none of them, so it gets empty overrides.
func practiceOverrides(cmd *cobra.Command) (config.Overrides, error) {
	var o config.Overrides
	f := cmd.Flags()

	if f.Lookup("preset") != nil && f.Changed("preset") {
		v, err := f.GetString("preset")
		if err != nil {
			return o, err
		}
		o.Preset = &v
	}
	for name, dst := range map[string]**int{"count": &o.Count, "min": &o.Min, "max": &o.Max} {
		if f.Lookup(name) == nil || !f.Changed(name) {
			continue
		}
		v, err := f.GetInt(name)
		if err != nil {
			return o, err
		}
		*dst = &v
	}
	if f.Lookup("interval") != nil && f.Changed("interval") {
		v, err := f.GetFloat64("interval")
		if err != nil {
			return o, err
		}
		o.Interval = &v
	}
	for name, dst := range map[string]**bool{"free": &o.Free, "voice": &o.Voice, "sum": &o.ShowSum} {
		if f.Lookup(name) == nil || !f.Changed(name) {
			continue
		}
		v, err := f.GetBool(name)
		if err != nil {
			return o, err
		}
		*dst = &v
	}
	return o, nil
}
