package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/soroban/internal/levels"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		w := cmd.OutOrStdout()
		st := e.tracker.Stats()
		lvl, prog := e.tracker.Level()

		printHeading(w, fmt.Sprintf("%s Level %d: %s", lvl.Icon, lvl.Level, lvl.Name))
		toNext := "top level reached"
		if next, ok := levels.Next(st.TotalXP); ok {
			toNext = fmt.Sprintf("%d XP to %s", st.XPToNextLevel, next.Name)
		}
		printRows(w, [][2]string{
			{"XP", fmt.Sprintf("%d (%.0f%% of this level, %s)", st.TotalXP, prog.Percent, toNext)},
		})
		fmt.Fprintln(w)

		printHeading(w, "Practice")
		rows := [][2]string{
			{"Sessions", fmt.Sprint(st.TotalSessions)},
			{"Practice time", formatDuration(st.TotalPracticeTime)},
			{"Numbers practiced", fmt.Sprint(st.TotalNumbersPracticed)},
			{"Exact matches", fmt.Sprint(st.ExactMatches)},
			{"Perfect sessions", fmt.Sprint(st.TotalPerfectSessions)},
			{"Average accuracy", fmt.Sprintf("%.1f%%", st.AverageAccuracy)},
			{"Best accuracy", fmt.Sprintf("%d%%", st.BestSessionAccuracy)},
			{"Best speed", fmt.Sprintf("%.1f numbers/min", st.BestSessionSpeed)},
			{"Longest session", formatDuration(st.LongestSession)},
			{"Current streak", plural(st.CurrentStreak, "day")},
			{"Best streak", plural(st.BestStreak, "day")},
		}
		if !st.LastPracticeDate.IsZero() {
			rows = append(rows, [2]string{"Last practice", st.LastPracticeDate.Local().Format("Jan 02, 2006")})
		}
		printRows(w, rows)
		return nil
	},
}
