package draw

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// boldFontSize is the smallest font size rendered in bold on a terminal.
const boldFontSize = 32

// Cell is one terminal character cell.
type Cell struct {
	Rune rune
	FG   color.Color // nil means terminal default
	BG   color.Color // nil means terminal default
	Bold bool
}

var blankCell = Cell{Rune: ' '}

// Canvas is a Surface backed by a grid of terminal cells.
// Each cell covers cellWidth x cellHeight logical pixels, so game code can work
// in pixel units while the terminal renders one glyph per cell.
type Canvas struct {
	termWidth  int // Columns
	termHeight int // Rows
	cellWidth  float64
	cellHeight float64
	cells      []Cell // Flat slice: [row * termWidth + col]

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderer *lipgloss.Renderer
	styles   map[styleKey]lipgloss.Style

	// Rows as last written to the terminal; only changed rows are re-sent.
	prevRows []string

	renderBuf strings.Builder
	rowBuf    strings.Builder
	runBuf    strings.Builder
}

type styleKey struct {
	fg, bg string
	bold   bool
}

// NewCanvas creates a canvas of termWidth x termHeight cells.
// A nil renderer uses lipgloss' default renderer (stdout).
func NewCanvas(termWidth, termHeight int, cellWidth, cellHeight float64, r *lipgloss.Renderer) *Canvas {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	c := &Canvas{
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		renderer:   r,
		styles:     make(map[styleKey]lipgloss.Style),
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the grid for new terminal dimensions. Contents are discarded
// when the size changes.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 0 {
		termWidth = 0
	}
	if termHeight < 0 {
		termHeight = 0
	}
	if termWidth == c.termWidth && termHeight == c.termHeight && c.cells != nil {
		return
	}
	c.termWidth = termWidth
	c.termHeight = termHeight
	c.cells = make([]Cell, termWidth*termHeight)
	c.Clear()
	c.ForceRedraw()
}

// ForceRedraw makes the next Render rewrite every row.
func (c *Canvas) ForceRedraw() {
	c.prevRows = make([]string, c.termHeight)
	for i := range c.prevRows {
		c.prevRows[i] = "\x00" // never equal to a rendered row
	}
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// TerminalWidth returns the column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// Width returns the logical width in pixels.
func (c *Canvas) Width() float64 {
	return float64(c.termWidth) * c.cellWidth
}

// Height returns the logical height in pixels.
func (c *Canvas) Height() float64 {
	return float64(c.termHeight) * c.cellHeight
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = blankCell
	}
}

// ClearRect blanks the cells covered by the rectangle.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	c.fillCells(x, y, w, h, blankCell)
}

// FillRect paints the background of the cells covered by the rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	c.fillCells(x, y, w, h, Cell{Rune: ' ', BG: col})
}

func (c *Canvas) fillCells(x, y, w, h float64, fill Cell) {
	if w <= 0 || h <= 0 {
		return
	}
	col0, col1 := c.span(x, w, c.cellWidth, c.termWidth)
	row0, row1 := c.span(y, h, c.cellHeight, c.termHeight)
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			c.cells[row*c.termWidth+col] = fill
		}
	}
}

// span converts a pixel interval to a clamped [first, last) cell range.
func (c *Canvas) span(pos, size, cell float64, limit int) (int, int) {
	first := int(math.Floor(pos / cell))
	last := int(math.Ceil((pos + size) / cell))
	if first < 0 {
		first = 0
	}
	if last > limit {
		last = limit
	}
	if last < first {
		last = first
	}
	return first, last
}

// FillText writes text into consecutive cells of the row holding baseline y.
// Existing backgrounds are kept so text can sit on a filled rectangle.
func (c *Canvas) FillText(text string, x, y float64, style TextStyle) {
	if text == "" {
		return
	}
	row := int(math.Ceil(y/c.cellHeight)) - 1
	if row < 0 || row >= c.termHeight {
		return
	}
	bold := style.Font.Size >= boldFontSize
	// Glyphs smaller than a bold cell would be squeezed, not dropped, so
	// MaxWidth only cuts text set at cell size or larger.
	maxCols := math.MaxInt
	if style.MaxWidth > 0 && bold {
		maxCols = int(style.MaxWidth / c.cellWidth)
	}
	col0 := int(math.Floor(x / c.cellWidth))

	i := 0
	for _, r := range text {
		if i >= maxCols {
			break
		}
		col := col0 + i
		i++
		if col < 0 {
			continue
		}
		if col >= c.termWidth {
			break
		}
		cell := &c.cells[row*c.termWidth+col]
		cell.Rune = r
		cell.FG = style.Color
		cell.Bold = bold
	}
}

// CellAt returns the cell at 0-based (col, row); out of range yields a blank cell.
func (c *Canvas) CellAt(col, row int) Cell {
	if col < 0 || col >= c.termWidth || row < 0 || row >= c.termHeight {
		return blankCell
	}
	return c.cells[row*c.termWidth+col]
}

// RowText returns the runes of a row without styling.
func (c *Canvas) RowText(row int) string {
	if row < 0 || row >= c.termHeight {
		return ""
	}
	var b strings.Builder
	for _, cell := range c.cells[row*c.termWidth : (row+1)*c.termWidth] {
		b.WriteRune(cell.Rune)
	}
	return b.String()
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1400 bytes stays under a typical 1500 byte MTU for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render writes every row that changed since the previous Render.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		line := c.renderRow(row)
		if line == c.prevRows[row] {
			continue
		}
		c.prevRows[row] = line
		fmt.Fprintf(&c.renderBuf, "\033[%d;%dH", row+1+c.offsetRow, 1+c.offsetCol)
		c.renderBuf.WriteString(line)
	}

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// renderRow builds the styled output for one row, grouping runs of equal style.
func (c *Canvas) renderRow(row int) string {
	c.rowBuf.Reset()
	c.runBuf.Reset()

	cells := c.cells[row*c.termWidth : (row+1)*c.termWidth]
	var runKey styleKey
	for i, cell := range cells {
		key := c.keyFor(cell)
		if i > 0 && key != runKey {
			c.flushRun(runKey)
		}
		runKey = key
		c.runBuf.WriteRune(cell.Rune)
	}
	c.flushRun(runKey)
	return c.rowBuf.String()
}

func (c *Canvas) flushRun(key styleKey) {
	if c.runBuf.Len() == 0 {
		return
	}
	if key == (styleKey{}) {
		c.rowBuf.WriteString(c.runBuf.String())
	} else {
		c.rowBuf.WriteString(c.style(key).Render(c.runBuf.String()))
	}
	c.runBuf.Reset()
}

func (c *Canvas) keyFor(cell Cell) styleKey {
	return styleKey{fg: hexColor(cell.FG), bg: hexColor(cell.BG), bold: cell.Bold}
}

func (c *Canvas) style(key styleKey) lipgloss.Style {
	if s, ok := c.styles[key]; ok {
		return s
	}
	s := c.renderer.NewStyle().Bold(key.bold)
	if key.fg != "" {
		s = s.Foreground(lipgloss.Color(key.fg))
	}
	if key.bg != "" {
		s = s.Background(lipgloss.Color(key.bg))
	}
	c.styles[key] = s
	return s
}

func hexColor(col color.Color) string {
	if col == nil {
		return ""
	}
	r, g, b, _ := col.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder

	if hasV {
		bar := strings.Repeat("─", c.termWidth)
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, bar)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, bar)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, bar)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, bar)
		}
	}

	if hasH {
		startRow := c.offsetRow + 1
		endRow := c.offsetRow + c.termHeight + 1
		for row := startRow; row < endRow; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	io.WriteString(w, buf.String())
}

// Ensure Canvas satisfies Surface.
var _ Surface = (*Canvas)(nil)
