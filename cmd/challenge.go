package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Show this week's challenge",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if _, err := e.tracker.RefreshChallenge(cmd.Context()); err != nil {
			return fmt.Errorf("refresh challenge: %w", err)
		}

		w := cmd.OutOrStdout()
		state := e.tracker.Challenge()
		if state.Current == nil {
			fmt.Fprintln(w, "No challenge this week.")
			return nil
		}
		c := *state.Current
		def, ok := c.Definition()
		if !ok {
			fmt.Fprintln(w, "No challenge this week.")
			return nil
		}

		printHeading(w, fmt.Sprintf("%s %s", def.Reward, def.Title))
		fmt.Fprintln(w, "  "+def.Description)
		fmt.Fprintln(w)

		status := fmt.Sprintf("%d/%d", c.Progress, def.Goal)
		if c.Completed {
			status += " (completed)"
		}
		rows := [][2]string{
			{"Progress", status},
			{"Difficulty", string(def.Difficulty)},
			{"Week", fmt.Sprintf("%s to %s", c.StartDate.Format("Jan 02"), c.EndDate.Format("Jan 02"))},
			{"Time left", remaining(time.Until(c.EndDate))},
			{"Completed so far", fmt.Sprint(len(state.CompletedIDs))},
		}
		if def.TimeLimit > 0 {
			rows = append(rows, [2]string{"Time limit", def.TimeLimit.String()})
		}
		printRows(w, rows)
		return nil
	},
}

func remaining(d time.Duration) string {
	if d <= 0 {
		return "ended"
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	if days > 0 {
		return fmt.Sprintf("%s %s", plural(days, "day"), plural(hours, "hour"))
	}
	return plural(hours, "hour")
}
