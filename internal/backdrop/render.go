package backdrop

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/constraints"
)

const halfBlock = "▀"

//nolint:gochecknoglobals
var black = colorful.Color{R: 0, G: 0, B: 0}

type number interface {
	constraints.Integer | constraints.Float
}

func clamp[T number](v, low, high T) T {
	if high < low {
		low, high = high, low
	}

	return min(high, max(low, v))
}

// Dim blends c toward black. An opacity of 0 is black, 1 is the original colour.
func Dim(c color.Color, opacity float64) colorful.Color {
	col, ok := colorful.MakeColor(c)
	if !ok {
		return black
	}

	return black.BlendRgb(col, clamp(opacity, 0, 1)).Clamped()
}

// Render draws img scaled to width x height cells. Each cell holds two vertical pixels using a
// half block with the top pixel as foreground and the bottom pixel as background. A nil image
// renders a blank black area.
func Render(img image.Image, width int, height int, opacity float64) string {
	width = max(width, 0)
	height = max(height, 0)
	if width == 0 || height == 0 {
		return ""
	}

	if img == nil || opacity <= 0 {
		blank := lipgloss.NewStyle().Background(lipgloss.Color(black.Hex())).Render(strings.Repeat(" ", width))
		rows := make([]string, height)
		for idx := range rows {
			rows[idx] = blank
		}

		return strings.Join(rows, "\n")
	}

	bounds := img.Bounds()
	pixelRows := height * 2
	var builder strings.Builder

	for row := range height {
		for col := range width {
			srcX := bounds.Min.X + clamp(col*bounds.Dx()/width, 0, bounds.Dx()-1)
			topY := bounds.Min.Y + clamp(row*2*bounds.Dy()/pixelRows, 0, bounds.Dy()-1)
			bottomY := bounds.Min.Y + clamp((row*2+1)*bounds.Dy()/pixelRows, 0, bounds.Dy()-1)

			top := Dim(img.At(srcX, topY), opacity)
			bottom := Dim(img.At(srcX, bottomY), opacity)

			builder.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex())).
				Render(halfBlock))
		}

		if row < height-1 {
			builder.WriteByte('\n')
		}
	}

	return builder.String()
}
