package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
)

// Table output formats.
const (
	tableFormatText = "table"
	tableFormatCSV  = "csv"
)

// notAvailable fills cells whose value is not finite.
const notAvailable = "n/a"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
)

// grid is a renderer-agnostic table: a header row and string cells.
type grid struct {
	headers []string
	rows    [][]string
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// writeGrid renders g to w as a bordered table or as CSV. Colors are only used
// on a terminal; cells that could not be computed are dimmed there.
func writeGrid(w io.Writer, g grid, format string) error {
	switch format {
	case tableFormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(g.headers); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
		if err := cw.WriteAll(g.rows); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
		return nil
	case tableFormatText, "":
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers(g.headers...).
			Rows(g.rows...)
		if isTerminal(w) {
			t = t.StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				case row >= 0 && row < len(g.rows) && col < len(g.rows[row]) && g.rows[row][col] == notAvailable:
					return dimStyle
				default:
					return cellStyle
				}
			})
		}
		_, err := fmt.Fprintln(w, t.Render())
		return err
	default:
		return fmt.Errorf("unknown --format %q; valid options: table, csv", format)
	}
}
