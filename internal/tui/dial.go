package tui

import (
	"fmt"
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"
)

// Terminal cells are roughly twice as tall as wide, so the dial is twice as wide.
const (
	dialWidth  = 23
	dialHeight = 11
	dialCX     = dialWidth / 2
	dialCY     = dialHeight / 2
	dialRX     = float64(dialWidth/2 - 1)
	dialRY     = float64(dialHeight / 2)
)

// dialPoint maps a screen angle (0 = up, clockwise) and a fraction of the radius to a cell.
func dialPoint(deg, frac float64) canvas.Point {
	rad := deg * math.Pi / 180
	return canvas.Point{
		X: dialCX + int(math.Round(frac*dialRX*math.Sin(rad))),
		Y: dialCY - int(math.Round(frac*dialRY*math.Cos(rad))),
	}
}

func setRune(c *canvas.Model, p canvas.Point, r rune, style lipgloss.Style) {
	cell := canvas.NewCell(r)
	cell.Style = style
	c.SetCell(p, cell)
}

// dialCanvas draws the rim, quarter ticks and the needle at rotation.
// A double-ended needle also gets a short tail opposite the tip.
func dialCanvas(rotation float64, doubleEnded bool, accent lipgloss.Color) canvas.Model {
	c := canvas.New(dialWidth, dialHeight)
	blank := lipgloss.NewStyle()
	for y := 0; y < dialHeight; y++ {
		for x := 0; x < dialWidth; x++ {
			setRune(&c, canvas.Point{X: x, Y: y}, ' ', blank)
		}
	}
	for deg := 0.0; deg < 360; deg += 6 {
		setRune(&c, dialPoint(deg, 1), '·', dialRimStyle)
	}
	for deg := 0.0; deg < 360; deg += 90 {
		setRune(&c, dialPoint(deg, 1), '+', dialTickStyle)
	}

	needle := lipgloss.NewStyle().Foreground(accent)
	for f := 0.2; f < 0.8; f += 0.1 {
		setRune(&c, dialPoint(rotation, f), '•', needle)
		if doubleEnded {
			setRune(&c, dialPoint(rotation+180, f), '•', needle)
		}
	}
	setRune(&c, dialPoint(rotation, 0.85), '●', needle.Bold(true))
	if doubleEnded {
		setRune(&c, dialPoint(rotation+180, 0.85), '○', needle)
	}
	setRune(&c, canvas.Point{X: dialCX, Y: dialCY}, '◉', dialHubStyle)
	return c
}

func renderDial(title string, rotation float64, doubleEnded bool, accent lipgloss.Color) string {
	c := dialCanvas(rotation, doubleEnded, accent)
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(title),
		c.View(),
		labelStyle.Render(fmt.Sprintf("%6.2f°", rotation)),
	)
}
