package internal

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"sweep/internal/anim"
)

// Ring geometry. The horizontal radius is doubled and the vertical radius
// halved to compensate for the ~2:1 aspect of terminal cells, so the ring
// reads as a circle on screen.
const (
	ringSegments = 60 // one segment per second of the minute
	ringRadius   = 8.0
	ringXScale   = 2.0
	ringYScale   = 0.55
)

// RenderRing rasterizes an angle fraction in [0,1] into a circular arc of
// terminal cells, sweeping clockwise from 12 o'clock, with the palette
// blended from its start color at the top to its end color along the arc.
// The label is centered inside the ring.
func RenderRing(fraction float64, pal anim.Palette, label string) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	width := int(math.Round(2*ringRadius*ringXScale)) + 3
	height := int(math.Round(2*ringRadius*ringYScale)) + 3
	cx := float64(width-1) / 2
	cy := float64(height-1) / 2

	grid := make([][]string, height)
	for y := range grid {
		grid[y] = make([]string, width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	filled := int(math.Round(fraction * ringSegments))
	start, startErr := colorful.Hex(pal.Start)
	end, endErr := colorful.Hex(pal.End)
	dim := lipgloss.NewStyle().Foreground(dimColor)

	for i := 0; i < ringSegments; i++ {
		theta := 2 * math.Pi * float64(i) / ringSegments
		x := int(math.Round(cx + ringRadius*ringXScale*math.Sin(theta)))
		y := int(math.Round(cy - ringRadius*ringYScale*math.Cos(theta)))
		if y < 0 || y >= height || x < 0 || x >= width {
			continue
		}
		if i < filled {
			glyph := CurrentSymbols.RingFilled
			if i == filled-1 {
				glyph = CurrentSymbols.RingHead
			}
			grid[y][x] = segmentStyle(start, end, startErr == nil && endErr == nil,
				float64(i)/ringSegments).Render(glyph)
		} else {
			grid[y][x] = dim.Render(CurrentSymbols.RingEmpty)
		}
	}

	placeLabel(grid, label, int(cy))

	rows := make([]string, height)
	for y := range grid {
		rows[y] = strings.Join(grid[y], "")
	}
	return strings.Join(rows, "\n")
}

// segmentStyle colors one arc segment, blending the palette in Luv space the
// same way bubbles renders its gradient progress bars. Falls back to the
// palette start color verbatim when a hex value fails to parse.
func segmentStyle(start, end colorful.Color, blend bool, t float64) lipgloss.Style {
	if !blend {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7"))
	}
	c := start.BlendLuv(end, t)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Bold(true)
}

// placeLabel overwrites the center of the grid with the label, one cell per
// rune. Labels wider than the grid are dropped rather than clipped.
func placeLabel(grid [][]string, label string, row int) {
	runes := []rune(label)
	if row < 0 || row >= len(grid) || len(runes) > len(grid[row]) {
		return
	}
	startX := (len(grid[row]) - len(runes)) / 2
	for i, r := range runes {
		grid[row][startX+i] = labelStyle.Render(string(r))
	}
}
