package draw

import (
	"io"
	"strconv"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Game code draws in logical field coordinates; the canvas scales them to
// terminal sub-pixels.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]

	logicalWidth  int
	logicalHeight int
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets of the render area.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
func NewScaledCanvas(termWidth, termHeight, logicalWidth, logicalHeight int) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / float64(c.logicalWidth)
	c.scaleY = float64(subPixelHeight) / float64(c.logicalHeight)
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// Pixel returns the color at sub-pixel (x, y), or ColorNone outside the canvas.
func (c *Canvas) Pixel(x, y int) Color {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		return c.pixels[y*c.termWidth+x]
	}
	return ColorNone
}

// pixelSpan maps the logical span [from, from+size) to sub-pixels. A
// non-empty span always covers at least one sub-pixel.
func pixelSpan(from, size int, scale float64) (start, end int) {
	start = int(float64(from) * scale)
	end = int(float64(from+size) * scale)
	if end <= start && size > 0 {
		end = start + 1
	}
	return start, end
}

// FillRect paints the logical rectangle at (x, y) of size w x h.
func (c *Canvas) FillRect(x, y, w, h int, col Color) {
	x0, x1 := pixelSpan(x, w, c.scaleX)
	y0, y1 := pixelSpan(y, h, c.scaleY)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.setPixel(px, py, col)
		}
	}
}

// ClearRect erases the logical rectangle at (x, y) of size w x h.
func (c *Canvas) ClearRect(x, y, w, h int) {
	c.FillRect(x, y, w, h, ColorNone)
}

// DrawLine draws a line between two logical points using Bresenham's algorithm.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col Color) {
	x1 = int(float64(x1) * c.scaleX)
	y1 = int(float64(y1) * c.scaleY)
	x2 = int(float64(x2) * c.scaleX)
	y2 = int(float64(y2) * c.scaleY)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		c.setPixel(x1, y1, col)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Render writes every cell of the canvas, blank ones included, so the
// previous frame never needs clearing.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 4)

	current := ColorNone
	for row := 0; row < c.termHeight; row++ {
		c.renderBuf.WriteString("\033[")
		c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row+1+c.offsetRow), 10))
		c.renderBuf.WriteByte(';')
		c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(1+c.offsetCol), 10))
		c.renderBuf.WriteByte('H')

		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth
		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			ch := rune(BlockEmpty)
			want := current
			switch {
			case top != ColorNone && bottom != ColorNone:
				ch, want = BlockFull, top
			case top != ColorNone:
				ch, want = BlockUpperHalf, top
			case bottom != ColorNone:
				ch, want = BlockLowerHalf, bottom
			}
			if want != current {
				c.renderBuf.WriteString(want.ANSI())
				current = want
			}
			c.renderBuf.WriteRune(ch)
		}
	}
	if current != ColorNone {
		c.renderBuf.WriteString(ColorReset)
	}

	writeChunked(w, c.renderBuf.String())
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	move := func(row, col int) {
		buf.WriteString("\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H")
	}
	line := strings.Repeat("─", c.termWidth)

	if hasV {
		if hasH {
			move(top, left)
			buf.WriteString("┌" + line + "┐")
			move(bottom, left)
			buf.WriteString("└" + line + "┘")
		} else {
			move(top, c.offsetCol+1)
			buf.WriteString(line)
			move(bottom, c.offsetCol+1)
			buf.WriteString(line)
		}
	}

	if hasH {
		startRow, endRow := top+1, bottom
		if !hasV {
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			move(row, left)
			buf.WriteString("│")
			move(row, right)
			buf.WriteString("│")
		}
	}

	writeChunked(w, buf.String())
}

// LogicalWidth returns the logical width.
func (c *Canvas) LogicalWidth() int { return c.logicalWidth }

// LogicalHeight returns the logical height.
func (c *Canvas) LogicalHeight() int { return c.logicalHeight }

// TerminalWidth returns the render area's column count.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the render area's row count.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// LogicalToTerminal converts logical coordinates to a 1-based position
// (col, row) inside the render area, for text overlays.
func (c *Canvas) LogicalToTerminal(x, y int) (col, row int) {
	px := int(float64(x) * c.scaleX)
	py := int(float64(y) * c.scaleY)
	return px + 1, py/2 + 1
}

// Set paints a single logical point.
func (c *Canvas) Set(x, y int, col Color) {
	c.setPixel(int(float64(x)*c.scaleX), int(float64(y)*c.scaleY), col)
}
