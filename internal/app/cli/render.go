package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	movesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	stickerStyles = map[cube.Color]lipgloss.Style{
		cube.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("232")),
		cube.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("232")),
		cube.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("255")),
		cube.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("21")).Foreground(lipgloss.Color("255")),
		cube.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
		cube.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("232")),
	}
)

// renderNet renders the cube as a colored unfolded net: U on top, the
// L F R B band in the middle, D at the bottom.
func renderNet(c *cube.Cube) string {
	var b strings.Builder
	indent := strings.Repeat(" ", 9)

	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		writeStickerRow(&b, c, cube.U, row)
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, face := range []cube.Face{cube.L, cube.F, cube.R, cube.B} {
			writeStickerRow(&b, c, face, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		writeStickerRow(&b, c, cube.D, row)
		b.WriteByte('\n')
	}
	return b.String()
}

func writeStickerRow(b *strings.Builder, c *cube.Cube, face cube.Face, row int) {
	for col := 0; col < 3; col++ {
		color := c.Facelets[face][row*3+col]
		b.WriteString(stickerStyles[color].Render(" " + color.String() + " "))
	}
}
