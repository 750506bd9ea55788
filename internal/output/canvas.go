package output

import (
	"strings"
)

// BoxStyle defines the character set for drawing boxes
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

var (
	// ASCIIStyle uses simple ASCII characters for box drawing
	ASCIIStyle = BoxStyle{
		TopLeft:     '+',
		TopRight:    '+',
		BottomLeft:  '+',
		BottomRight: '+',
		Horizontal:  '-',
		Vertical:    '|',
	}

	// UnicodeStyle uses Unicode box drawing characters
	UnicodeStyle = BoxStyle{
		TopLeft:     '┌',
		TopRight:    '┐',
		BottomLeft:  '└',
		BottomRight: '┘',
		Horizontal:  '─',
		Vertical:    '│',
	}
)

// Canvas is a 2D character buffer the workspace rendering is drawn into
type Canvas struct {
	Width  int
	Height int
	buffer [][]rune
	style  BoxStyle
}

// NewCanvas creates a canvas of the given dimensions filled with spaces
func NewCanvas(width, height int, useUnicode bool) *Canvas {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
		for j := range buffer[i] {
			buffer[i][j] = ' '
		}
	}

	style := ASCIIStyle
	if useUnicode {
		style = UnicodeStyle
	}

	return &Canvas{
		Width:  width,
		Height: height,
		buffer: buffer,
		style:  style,
	}
}

// SetCell sets a character at the specified position
func (c *Canvas) SetCell(x, y int, r rune) {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		c.buffer[y][x] = r
	}
}

// DrawBox draws a box outline with the specified position and size
func (c *Canvas) DrawBox(x, y, width, height int) {
	if width < 2 || height < 2 {
		return // too small to draw
	}

	c.SetCell(x, y, c.style.TopLeft)
	c.SetCell(x+width-1, y, c.style.TopRight)
	c.SetCell(x, y+height-1, c.style.BottomLeft)
	c.SetCell(x+width-1, y+height-1, c.style.BottomRight)

	for i := 1; i < width-1; i++ {
		c.SetCell(x+i, y, c.style.Horizontal)
		c.SetCell(x+i, y+height-1, c.style.Horizontal)
	}
	for i := 1; i < height-1; i++ {
		c.SetCell(x, y+i, c.style.Vertical)
		c.SetCell(x+width-1, y+i, c.style.Vertical)
	}
}

// DrawText writes text at the specified position, clipped to the canvas
func (c *Canvas) DrawText(x, y int, text string) {
	for i, r := range text {
		c.SetCell(x+i, y, r)
	}
}

// String renders the canvas as a newline-joined string
func (c *Canvas) String() string {
	var sb strings.Builder
	for _, row := range c.buffer {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
