package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubevision"
)

// Sticker cell styles keyed by color label. Backgrounds follow the default
// classifier palette so the terminal net matches what the camera saw.
var stickerStyles = map[cubevision.ColorLabel]lipgloss.Style{
	cubevision.White:  lipgloss.NewStyle().Background(lipgloss.Color("#ffffff")).Foreground(lipgloss.Color("#000000")),
	cubevision.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("#ffd500")).Foreground(lipgloss.Color("#000000")),
	cubevision.Green:  lipgloss.NewStyle().Background(lipgloss.Color("#009b48")).Foreground(lipgloss.Color("#ffffff")),
	cubevision.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("#0046ad")).Foreground(lipgloss.Color("#ffffff")),
	cubevision.Red:    lipgloss.NewStyle().Background(lipgloss.Color("#b71234")).Foreground(lipgloss.Color("#ffffff")),
	cubevision.Orange: lipgloss.NewStyle().Background(lipgloss.Color("#ff5800")).Foreground(lipgloss.Color("#000000")),
}

var blankStickerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// stickerCell renders one facelet as a colored cell carrying its letter.
func stickerCell(c cubevision.ColorLabel) string {
	style, ok := stickerStyles[c]
	if !ok {
		return blankStickerStyle.Render(" ? ")
	}
	return style.Render(" " + c.String() + " ")
}

// faceRow renders one row of three stickers from a face.
func faceRow(colors [9]cubevision.ColorLabel, row int) string {
	var b strings.Builder
	for col := 0; col < 3; col++ {
		b.WriteString(stickerCell(colors[row*3+col]))
	}
	return b.String()
}

// renderNet draws the cube as an unfolded net: the up face on top, the
// left/front/right/back band in the middle, and the down face at the bottom.
func renderNet(m *cubevision.CubeModel) string {
	up := m.FaceColors(cubevision.FaceU)
	left := m.FaceColors(cubevision.FaceL)
	front := m.FaceColors(cubevision.FaceF)
	right := m.FaceColors(cubevision.FaceR)
	back := m.FaceColors(cubevision.FaceB)
	down := m.FaceColors(cubevision.FaceD)

	indent := strings.Repeat(" ", 9)

	var b strings.Builder
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		b.WriteString(faceRow(up, row))
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(faceRow(left, row))
		b.WriteString(faceRow(front, row))
		b.WriteString(faceRow(right, row))
		b.WriteString(faceRow(back, row))
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		b.WriteString(faceRow(down, row))
		b.WriteString("\n")
	}
	return b.String()
}
