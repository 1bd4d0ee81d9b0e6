package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/soroban/internal/app"
	"github.com/abhisek/soroban/internal/clock"
	"github.com/abhisek/soroban/internal/config"
	"github.com/abhisek/soroban/internal/numgen"
	"github.com/abhisek/soroban/internal/voice"
)

// runApp opens the store, resolves the practice config, and launches the TUI.
func runApp(cmd *cobra.Command, play bool) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	overrides, err := practiceOverrides(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(e.tracker.Preferences().PracticeConfig(), e.file, overrides)
	if err != nil {
		return fmt.Errorf("resolve practice config: %w", err)
	}

	var speaker voice.Speaker = voice.Nop{}
	if cfg.VoiceEnabled {
		var program string
		if e.file.Voice.Program != nil {
			program = *e.file.Voice.Program
		}
		speaker = voice.New(program, e.file.Voice.Args, e.logger)
	}
	defer speaker.Stop()

	return app.Run(app.Options{
		Tracker: e.tracker,
		Config:  cfg,
		Clock:   clock.Real{},
		Source:  numgen.NewRandomSource(),
		Speaker: speaker,
		Logger:  e.logger,
		Play:    play,
	})
}
