package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/abhisek/soroban/internal/config"
	"github.com/abhisek/soroban/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config, database and log file locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		file, err := loadFileConfig(cmd)
		if err != nil {
			return err
		}
		logPath := config.DefaultLogPath()
		if file.Log.Path != nil && *file.Log.Path != "" {
			logPath = *file.Log.Path
		}
		printRows(cmd.OutOrStdout(), [][2]string{
			{"config", configPath(cmd)},
			{"database", dbPath},
			{"log", logPath},
		})
		return nil
	},
}

// effectiveConfig is the resolved practice configuration in file layout.
type effectiveConfig struct {
	Practice struct {
		Interval float64 `toml:"interval"`
		Count    int     `toml:"count"`
		Min      int     `toml:"min"`
		Max      int     `toml:"max"`
		Free     bool    `toml:"free"`
		ShowSum  bool    `toml:"show-sum"`
	} `toml:"practice"`
	Voice struct {
		Enabled bool `toml:"enabled"`
	} `toml:"voice"`
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective practice configuration",
	Long:  "Print the practice configuration after merging defaults, saved preferences and the config file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		cfg, err := config.Resolve(e.tracker.Preferences().PracticeConfig(), e.file, config.Overrides{})
		if err != nil {
			return err
		}

		var out effectiveConfig
		out.Practice.Interval = cfg.TimeBetweenNumbers
		out.Practice.Count = cfg.NumberOfNumbers
		out.Practice.Min = cfg.MinNumber
		out.Practice.Max = cfg.MaxNumber
		out.Practice.Free = cfg.IsFreeMode()
		out.Practice.ShowSum = cfg.ShowRealTimeSum
		out.Voice.Enabled = cfg.VoiceEnabled
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(out)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath(cmd)
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := store.EnsureDir(path); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.DefaultTemplate()), 0o644); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
