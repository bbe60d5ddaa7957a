package components

import (
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// alphaThreshold is the 8-bit alpha below which a pixel counts as transparent.
const alphaThreshold = 128

// SpriteWidget draws an image with half-block cells: each terminal cell
// shows two vertically stacked pixels.
type SpriteWidget struct {
	Image  image.Image
	Alt    string // shown when Image is nil
	Width  int    // cells
	Height int    // cells
}

func NewSpriteWidget(width, height int) *SpriteWidget {
	return &SpriteWidget{Width: width, Height: height}
}

func (s *SpriteWidget) Init() tea.Cmd {
	return nil
}

func (s *SpriteWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, nil
}

// SetImage swaps the image; nil falls back to the alt text.
func (s *SpriteWidget) SetImage(img image.Image, alt string) {
	s.Image = img
	s.Alt = alt
}

func (s *SpriteWidget) View() string {
	if s.Width <= 0 || s.Height <= 0 {
		return ""
	}
	if s.Image == nil {
		return lipgloss.Place(s.Width, s.Height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#71717A")).Render(s.Alt))
	}
	return lipgloss.Place(s.Width, s.Height, lipgloss.Center, lipgloss.Center,
		HalfBlocks(s.Image, s.Width, s.Height))
}

// HalfBlocks renders img into at most cols x rows cells, keeping aspect ratio.
// Transparent padding around the sprite is cropped first.
func HalfBlocks(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	bounds := opaqueBounds(img)
	if bounds.Empty() {
		return ""
	}
	src := img
	if sub, ok := img.(interface {
		SubImage(r image.Rectangle) image.Image
	}); ok {
		src = sub.SubImage(bounds)
	}

	thumb := resize.Thumbnail(uint(cols), uint(rows*2), src, resize.NearestNeighbor) //nolint:gosec // small positive sizes
	tb := thumb.Bounds()

	var lines []string
	for y := tb.Min.Y; y < tb.Max.Y; y += 2 {
		var b strings.Builder
		for x := tb.Min.X; x < tb.Max.X; x++ {
			top, topOK := pixel(thumb, x, y)
			var bottom colorful.Color
			bottomOK := false
			if y+1 < tb.Max.Y {
				bottom, bottomOK = pixel(thumb, x, y+1)
			}
			b.WriteString(cell(top, topOK, bottom, bottomOK))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func cell(top colorful.Color, topOK bool, bottom colorful.Color, bottomOK bool) string {
	switch {
	case topOK && bottomOK:
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(top.Hex())).
			Background(lipgloss.Color(bottom.Hex())).
			Render("▀")
	case topOK:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(top.Hex())).Render("▀")
	case bottomOK:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(bottom.Hex())).Render("▄")
	default:
		return " "
	}
}

func pixel(img image.Image, x, y int) (colorful.Color, bool) {
	c := img.At(x, y)
	if _, _, _, a := c.RGBA(); a>>8 < alphaThreshold {
		return colorful.Color{}, false
	}
	col, ok := colorful.MakeColor(c)
	return col, ok
}

func opaqueBounds(img image.Image) image.Rectangle {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a>>8 >= alphaThreshold {
				minX = min(minX, x)
				minY = min(minY, y)
				maxX = max(maxX, x+1)
				maxY = max(maxY, y+1)
			}
		}
	}
	if minX >= maxX || minY >= maxY {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX, maxY)
}
