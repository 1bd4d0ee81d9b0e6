package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/soroban/internal/ui/theme"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(theme.TextDim)
	valueStyle   = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
)

// newTable returns a table in the app palette.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)
		})
}

// printRows writes label/value pairs aligned on the label column.
func printRows(w io.Writer, rows [][2]string) {
	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}
	for _, r := range rows {
		label := labelStyle.Render(r[0] + strings.Repeat(" ", width-len(r[0])))
		lipgloss.Fprintln(w, "  "+label+"  "+valueStyle.Render(r[1]))
	}
}

func printHeading(w io.Writer, text string) {
	lipgloss.Fprintln(w, headingStyle.Render(text))
}

// confirm asks a yes/no question on the command's input unless --yes
// was given.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return true, nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func formatDuration(secs float64) string {
	d := time.Duration(secs * float64(time.Second)).Round(time.Second)
	if d < time.Minute {
		return d.String()
	}
	return fmt.Sprintf("%dm %02ds", int(d.Minutes()), int(d.Seconds())%60)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
