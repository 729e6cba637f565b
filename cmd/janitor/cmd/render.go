package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Color palette
var (
	colorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	colorSecondary = lipgloss.Color("#06B6D4") // Cyan
	colorSuccess   = lipgloss.Color("#10B981") // Emerald
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorDimmed    = lipgloss.Color("#374151") // Dark Gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	changedStyle = cellStyle.
			Foreground(colorSuccess)

	unchangedStyle = cellStyle.
			Foreground(colorMuted)

	indexStyle = cellStyle.
			Foreground(colorSecondary)
)

// columnChange is one row of a rename listing
type columnChange struct {
	Index int
	From  string
	To    string
}

// renderChanges writes the listing as a bordered table, or as tab-separated
// "from<TAB>to" lines when plain is set
func renderChanges(w io.Writer, changes []columnChange, plain bool) error {
	if plain {
		for _, c := range changes {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", c.From, c.To); err != nil {
				return err
			}
		}
		return nil
	}

	rows := make([][]string, len(changes))
	for i, c := range changes {
		rows[i] = []string{strconv.Itoa(c.Index + 1), c.From, c.To}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDimmed)).
		Headers("#", "COLUMN", "CLEANED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return indexStyle
			case col == 2 && row < len(changes) && changes[row].From == changes[row].To:
				return unchangedStyle
			case col == 2:
				return changedStyle
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// renderList writes one value per line, or a single-column table
func renderList(w io.Writer, title string, values []string, plain bool) error {
	if len(values) == 0 {
		return nil
	}
	if plain {
		_, err := fmt.Fprintln(w, strings.Join(values, "\n"))
		return err
	}

	rows := make([][]string, len(values))
	for i, v := range values {
		rows[i] = []string{v}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDimmed)).
		Headers(title).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
