package components

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"pokeview/internal/pokeapi"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestHalfBlocksSolid(t *testing.T) {
	img := solid(4, 4, color.NRGBA{R: 255, A: 255})

	out := ansi.Strip(HalfBlocks(img, 10, 10))
	lines := strings.Split(out, "\n")

	if len(lines) != 2 {
		t.Fatalf("Expected 2 rows for a 4px tall image, got %d: %q", len(lines), out)
	}
	for i, line := range lines {
		if line != "▀▀▀▀" {
			t.Errorf("Row %d: expected 4 half blocks, got %q", i, line)
		}
	}
}

func TestHalfBlocksCropsTransparentPadding(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	img.Set(3, 3, color.NRGBA{G: 255, A: 255})
	img.Set(4, 3, color.NRGBA{G: 255, A: 255})

	out := ansi.Strip(HalfBlocks(img, 20, 20))
	if out != "▀▀" {
		t.Errorf("Expected cropped 2x1 sprite, got %q", out)
	}
}

func TestHalfBlocksBottomOnly(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{B: 255, A: 255})
	img.Set(1, 1, color.NRGBA{B: 255, A: 255})

	out := ansi.Strip(HalfBlocks(img, 2, 1))
	if out != "▀▄" {
		t.Errorf("Expected top and bottom half blocks, got %q", out)
	}
}

func TestHalfBlocksTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if out := HalfBlocks(img, 4, 4); out != "" {
		t.Errorf("Expected empty output for fully transparent image, got %q", out)
	}
	if out := HalfBlocks(nil, 4, 4); out != "" {
		t.Errorf("Expected empty output for nil image, got %q", out)
	}
}

func TestSpriteWidgetAltText(t *testing.T) {
	w := NewSpriteWidget(20, 4)
	w.SetImage(nil, "pikachu")

	if out := ansi.Strip(w.View()); !strings.Contains(out, "pikachu") {
		t.Errorf("Expected alt text when image is missing, got %q", out)
	}
}

func TestShortStatName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"hp", "HP"},
		{"attack", "Atk"},
		{"special-defense", "SpD"},
		{"speed", "Spe"},
		{"accuracy", "acc"},
		{"ev", "ev"},
	}

	for _, tt := range tests {
		if got := ShortStatName(tt.name); got != tt.expected {
			t.Errorf("ShortStatName(%q) = %q; want %q", tt.name, got, tt.expected)
		}
	}
}

func TestStatChartEmpty(t *testing.T) {
	c := NewStatChart(30, 10)
	if out := c.View(); out != "" {
		t.Errorf("Expected no chart without stats, got %q", out)
	}
}

func TestStatChartRendersLabels(t *testing.T) {
	c := NewStatChart(30, 10)
	c.SetStats([]pokeapi.StatEntry{
		{BaseStat: 45, Stat: pokeapi.Resource{Name: "hp"}},
		{BaseStat: 49, Stat: pokeapi.Resource{Name: "attack"}},
	}, false)

	out := ansi.Strip(c.View())
	if !strings.Contains(out, "Stat Chart") {
		t.Errorf("Expected chart title, got %q", out)
	}
}
