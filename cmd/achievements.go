package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievements and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		entries := e.tracker.Achievements()
		unlocked := 0
		t := newTable("", "Achievement", "Tier", "Progress", "Unlocked")
		for _, en := range entries {
			if en.State.Unlocked {
				unlocked++
			}
			icon, name, desc := en.Def.Icon, en.Def.Name, en.Def.Description
			if en.Def.Secret && !en.State.Unlocked {
				icon, name, desc = "🔒", "???", "Secret achievement"
			}
			when := "-"
			if en.State.UnlockedDate != nil {
				when = en.State.UnlockedDate.Local().Format("2006-01-02")
			}
			t.Row(
				icon,
				name+"\n"+desc,
				string(en.Def.Tier),
				fmt.Sprintf("%d/%d", min(en.State.Progress, en.Def.MaxProgress), en.Def.MaxProgress),
				when,
			)
		}

		w := cmd.OutOrStdout()
		printHeading(w, fmt.Sprintf("%d of %d unlocked", unlocked, len(entries)))
		lipgloss.Fprintln(w, t.Render())
		return nil
	},
}
