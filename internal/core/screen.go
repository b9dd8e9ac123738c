package core

import (
	"image/color"
	"strings"
)

// Cell is a single character on the screen with its foreground colour.
// A zero Color means "terminal default".
type Cell struct {
	Rune  rune
	Color color.RGBA
}

// Screen is a 2D character buffer for rendering scenes in a terminal.
// It decouples simulation from the terminal: games hand over a Scene, the
// screen rasterizes it into cells, the platform turns cells into output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with uncoloured spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune at the given position keeping the default colour.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a coloured cell at the given position.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position, or a space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(x, y, w, h int, c color.RGBA) {
	right, bottom := x+w-1, y+h-1
	s.SetCell(x, y, Cell{'┌', c})
	s.SetCell(right, y, Cell{'┐', c})
	s.SetCell(x, bottom, Cell{'└', c})
	s.SetCell(right, bottom, Cell{'┘', c})
	for i := x + 1; i < right; i++ {
		s.SetCell(i, y, Cell{'─', c})
		s.SetCell(i, bottom, Cell{'─', c})
	}
	for j := y + 1; j < bottom; j++ {
		s.SetCell(x, j, Cell{'│', c})
		s.SetCell(right, j, Cell{'│', c})
	}
}

// FillEllipse fills every cell whose centre lies inside the axis-aligned
// ellipse with centre (cx, cy) and radii (rx, ry), all in cell units.
func (s *Screen) FillEllipse(cx, cy, rx, ry float64, c Cell) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := int(cy - ry); y <= int(cy+ry); y++ {
		for x := int(cx - rx); x <= int(cx+rx); x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				s.SetCell(x, y, c)
			}
		}
	}
	// Tiny sprites still get one cell.
	s.SetCell(int(cx), int(cy), c)
}

// DrawScene rasterizes a scene into the screen. The play-field is scaled to
// the area inside a one-cell border, leaving the first row for the HUD.
func (s *Screen) DrawScene(scene Scene) {
	s.Clear()
	if s.width < 3 || s.height < 4 || scene.Width <= 0 || scene.Height <= 0 {
		return
	}

	s.DrawBox(0, 1, s.width, s.height-1, scene.Background)

	innerW := float64(s.width - 2)
	innerH := float64(s.height - 3)
	sx := innerW / scene.Width
	sy := innerH / scene.Height

	for _, sp := range scene.Sprites {
		cx := 1 + sp.Position.X*sx
		cy := 2 + sp.Position.Y*sy
		if sp.Radius > 0 {
			s.FillEllipse(cx, cy, sp.Radius*sx, sp.Radius*sy, Cell{'●', sp.Color})
			continue
		}
		x0 := 1 + int(sp.Bounds.X*sx)
		y0 := 2 + int(sp.Bounds.Y*sy)
		x1 := 1 + int(sp.Bounds.Right()*sx)
		y1 := 2 + int(sp.Bounds.Bottom()*sy)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				s.SetCell(x, y, Cell{'█', sp.Color})
			}
		}
	}

	s.DrawText(0, 0, strings.Join(scene.HUD, "  "))
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	rs := make([]rune, s.width)
	for x, c := range s.cells[y] {
		rs[x] = c.Rune
	}
	return string(rs)
}
