package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/lvsearch/search"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	failStyle   = cellStyle.Foreground(lipgloss.Color("#E74C3C"))
)

// summaryHeaders are the comparison table columns.
var summaryHeaders = []string{"strategy", "found", "visited", "expansions", "length", "cost", "path"}

// WriteSummary writes one table row per result, in the given order.
// styled enables bold headers and red "no" cells; pass false for files and
// pipes.
func WriteSummary(w io.Writer, results []*search.Result, styled bool) error {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		found, path := "no", "-"
		if r.Found {
			found, path = "yes", r.PathString()
		}
		rows = append(rows, []string{
			r.Strategy.Title(),
			found,
			humanize.Comma(int64(r.StatesVisited)),
			humanize.Comma(int64(r.Expansions)),
			fmt.Sprint(r.PathLength),
			FormatFloat(r.TotalCost),
			path,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(summaryHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if !styled {
				return cellStyle
			}
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 && row >= 0 && row < len(rows) && rows[row][1] == "no" {
				return failStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.String())

	return err
}
