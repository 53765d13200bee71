package viz

import "strings"

// Braille cells hold 2x4 dots:
// 1 4
// 2 5
// 3 6
// 7 8
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

// Canvas is a braille plot of Width x Height cells, addressed in dots:
// (Width*2) x (Height*4), origin top left.
type Canvas struct {
	Width, Height int
	cells         [][]uint8
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, cells: make([][]uint8, h)}
	for i := range c.cells {
		c.cells[i] = make([]uint8, w)
	}
	return c
}

// Set lights the dot at (x, y); out-of-range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.Width*2 || y >= c.Height*4 {
		return
	}
	c.cells[y/4][x/2] |= dotBits[y%4][x%2]
}

// Line joins two dots with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx, sx := absInt(x1-x0), 1
	if x1 < x0 {
		sx = -1
	}
	dy, sy := -absInt(y1-y0), 1
	if y1 < y0 {
		sy = -1
	}
	e := dx + dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		if 2*e >= dy {
			e += dy
			x0 += sx
		}
		if 2*e <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DashedVLine draws a vertical line at dot column x, dash dots on and dash off.
func (c *Canvas) DashedVLine(x, dash int) {
	if dash < 1 {
		dash = 1
	}
	for y := 0; y < c.Height*4; y++ {
		if (y/dash)%2 == 0 {
			c.Set(x, y)
		}
	}
}

// Row returns cell row r as braille runes.
func (c *Canvas) Row(r int) []rune {
	row := make([]rune, c.Width)
	for i, bits := range c.cells[r] {
		row[i] = brailleBase + rune(bits)
	}
	return row
}

func (c *Canvas) String() string {
	var b strings.Builder
	for r := range c.cells {
		b.WriteString(string(c.Row(r)))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
