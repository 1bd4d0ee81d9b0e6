package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and manage past sessions",
	RunE:  listHistory,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List past sessions, newest first",
	RunE:  listHistory,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one session (earned XP and achievements are kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.tracker.DeleteSession(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", args[0])
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every session (earned XP and achievements are kept)",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		n := len(e.tracker.Records())
		ok, err := confirm(cmd, fmt.Sprintf("Delete all %s?", plural(n, "session")))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
		if err := e.tracker.ClearHistory(cmd.Context()); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", plural(n, "session"))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{historyCmd, historyListCmd} {
		c.Flags().Int("limit", 20, "Maximum sessions to show (0 for all)")
	}
	historyClearCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
}

func listHistory(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	w := cmd.OutOrStdout()
	records := e.tracker.Records()
	if len(records) == 0 {
		fmt.Fprintln(w, "No sessions yet. Run `soroban play` to start practicing.")
		return nil
	}
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	t := newTable("ID", "Date", "Numbers", "Total", "Accuracy", "Speed", "XP")
	for _, rec := range records {
		count := fmt.Sprint(len(rec.Numbers))
		if rec.Config.IsFreeMode() {
			count += " (free)"
		}
		acc := fmt.Sprintf("%d%%", rec.Accuracy)
		if rec.IsPerfect() {
			acc += " ★"
		}
		t.Row(
			rec.ID,
			rec.Timestamp.Local().Format("2006-01-02 15:04"),
			count,
			fmt.Sprint(rec.Total),
			acc,
			fmt.Sprintf("%.1f/min", rec.Speed()),
			fmt.Sprintf("+%d", rec.XPEarned),
		)
	}
	lipgloss.Fprintln(w, t.Render())

	if all := len(e.tracker.Records()); all > len(records) {
		fmt.Fprintf(w, "%s more; use --limit 0 to show all\n", plural(all-len(records), "session"))
	}
	return nil
}
