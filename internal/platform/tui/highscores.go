package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	boardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	boardBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	boardEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// newBoardTable builds a read-only table of the high-score board with
// 1-based rank labels.
func newBoardTable(board []storage.Entry) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 4},
		{Title: "Name", Width: 16},
		{Title: "Score", Width: 7},
	}

	rows := make([]table.Row, len(board))
	for i, e := range board {
		rows[i] = table.Row{
			strconv.Itoa(i+1) + ".",
			e.Name,
			strconv.Itoa(e.Score),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(storage.MaxHighScores+2), // Header + border + rows
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable; keep the cursor row unstyled
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// renderBoard renders the titled high-score panel.
func renderBoard(board []storage.Entry) string {
	body := boardEmptyStyle.Render("No high scores yet.")
	if len(board) > 0 {
		t := newBoardTable(board)
		body = t.View()
	}
	return boardBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		boardTitleStyle.Render("High Scores"),
		body,
	))
}
