package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"SignalWatch/internal/calculator"
)

const (
	defaultWidth  = 100
	defaultHeight = 20
	minWidth      = 10
	minHeight     = 5
	dateLayout    = "2006-01-02"
)

var nan = math.NaN()

// layer orders what wins when two elements share a cell.
type layer int

const (
	layerEmpty layer = iota
	layerBand
	layerBandEdge
	layerEMA50
	layerEMA20
	layerClose
	layerSell
	layerBuy
)

var glyphs = map[layer]rune{
	layerEmpty:    ' ',
	layerBand:     '░',
	layerBandEdge: '·',
	layerEMA50:    '*',
	layerEMA20:    '+',
	layerClose:    '●',
	layerSell:     '▼',
	layerBuy:      '▲',
}

// TerminalRenderer draws charts as styled text.
type TerminalRenderer struct {
	Width  int
	Height int
}

// NewTerminalRenderer creates a renderer with a plot area of width columns
// by height rows. Non-positive sizes fall back to 100x20.
func NewTerminalRenderer(width, height int) *TerminalRenderer {
	return &TerminalRenderer{Width: width, Height: height}
}

func (r *TerminalRenderer) size() (width, height int) {
	width, height = r.Width, r.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return max(width, minWidth), max(height, minHeight)
}

type styles struct {
	title  lipgloss.Style
	muted  lipgloss.Style
	layers map[layer]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")),
		muted: r.NewStyle().Foreground(lipgloss.Color("#888888")),
		layers: map[layer]lipgloss.Style{
			layerEmpty:    r.NewStyle(),
			layerBand:     r.NewStyle().Foreground(lipgloss.Color("#3A3F55")),
			layerBandEdge: r.NewStyle().Foreground(lipgloss.Color("#687A92")),
			layerEMA50:    r.NewStyle().Foreground(lipgloss.Color("#FF9500")),
			layerEMA20:    r.NewStyle().Foreground(lipgloss.Color("#3E6AD6")),
			layerClose:    r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
			layerSell:     r.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
			layerBuy:      r.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true),
		},
	}
}

// Render writes the chart for d to w. A zoom window without bars prints
// the title and a notice instead of a plot.
func (r *TerminalRenderer) Render(w io.Writer, d Data) error {
	st := newStyles(lipgloss.NewRenderer(w))
	title := st.title.Render(fmt.Sprintf("%s Stock Price with Buy and Sell Signals", d.Symbol))

	lo, hi := d.window()
	closes := make([]float64, 0, hi-lo)
	for i := lo; i < hi; i++ {
		closes = append(closes, d.Bars[i].Close)
	}
	ema20, ema50 := slice(d.EMA20, lo, hi), slice(d.EMA50, lo, hi)
	upper, lower := slice(d.Upper, lo, hi), slice(d.Lower, lo, hi)

	low, high, ok := calculator.Bounds(closes, ema20, ema50, upper, lower)
	if !ok {
		_, err := fmt.Fprintf(w, "%s\n%s\n", title, st.muted.Render("no data to plot"))
		return err
	}
	if high <= low {
		low, high = low-0.5, high+0.5
	}

	n := hi - lo
	width, height := r.size()
	c := newCanvas(min(width, n), height)
	for i := 0; i < n; i++ {
		if math.IsNaN(upper[i]) || math.IsNaN(lower[i]) {
			continue
		}
		x := c.x(i, n)
		top, bottom := c.y(upper[i], low, high), c.y(lower[i], low, high)
		for y := top; y <= bottom; y++ {
			c.set(x, y, layerBand)
		}
		c.set(x, top, layerBandEdge)
		c.set(x, bottom, layerBandEdge)
	}
	c.series(ema50, low, high, layerEMA50)
	c.series(ema20, low, high, layerEMA20)
	c.series(closes, low, high, layerClose)
	for _, i := range d.Sell {
		if i >= lo && i < hi {
			c.set(c.x(i-lo, n), c.y(closes[i-lo], low, high)-1, layerSell)
		}
	}
	for _, i := range d.Buy {
		if i >= lo && i < hi {
			c.set(c.x(i-lo, n), c.y(closes[i-lo], low, high)+1, layerBuy)
		}
	}

	var b strings.Builder
	b.WriteString(title + "\n")

	labels := map[int]string{
		0:                 fmt.Sprintf("%.2f", high),
		(c.height - 1) / 2: fmt.Sprintf("%.2f", (high+low)/2),
		c.height - 1:      fmt.Sprintf("%.2f", low),
	}
	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, len(l))
	}
	for y := 0; y < c.height; y++ {
		b.WriteString(st.muted.Render(fmt.Sprintf("%*s │", labelWidth, labels[y])))
		b.WriteString(c.row(y, st))
		b.WriteByte('\n')
	}

	pad := strings.Repeat(" ", labelWidth+1)
	b.WriteString(st.muted.Render(pad+"└"+strings.Repeat("─", c.width)) + "\n")
	first := d.Bars[lo].Time.Format(dateLayout)
	last := d.Bars[hi-1].Time.Format(dateLayout)
	axis := first
	if n > 1 {
		gap := max(1, c.width-len(first)-len(last))
		axis = first + strings.Repeat(" ", gap) + last
	}
	b.WriteString(st.muted.Render(pad+" "+axis) + "\n")
	b.WriteString(legend(st) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func legend(st styles) string {
	items := []struct {
		l    layer
		text string
	}{
		{layerClose, "Close Price"},
		{layerEMA20, "EMA 20"},
		{layerEMA50, "EMA 50"},
		{layerBand, "Bollinger Bands"},
		{layerBuy, "Buy Signal"},
		{layerSell, "Sell Signal"},
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, st.layers[it.l].Render(string(glyphs[it.l]))+" "+st.muted.Render(it.text))
	}
	return strings.Join(parts, "  ")
}

type canvas struct {
	width, height int
	cells         [][]layer
}

func newCanvas(width, height int) *canvas {
	cells := make([][]layer, height)
	for y := range cells {
		cells[y] = make([]layer, width)
	}
	return &canvas{width: width, height: height, cells: cells}
}

// set paints a cell unless something of higher priority is already there.
func (c *canvas) set(x, y int, l layer) {
	y = max(0, min(c.height-1, y))
	if x < 0 || x >= c.width {
		return
	}
	if l > c.cells[y][x] {
		c.cells[y][x] = l
	}
}

func (c *canvas) x(idx, total int) int {
	return mapIndexToX(idx, total, c.width)
}

func (c *canvas) y(v, low, high float64) int {
	return mapValueToY(v, low, high, c.height)
}

// series plots values, joining neighbouring columns with a vertical run.
func (c *canvas) series(values []float64, low, high float64, l layer) {
	lastX, lastY := -1, -1
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			lastX, lastY = -1, -1
			continue
		}
		x, y := c.x(i, len(values)), c.y(v, low, high)
		if lastX >= 0 && x-lastX == 1 {
			for yy := min(y, lastY); yy <= max(y, lastY); yy++ {
				c.set(x, yy, l)
			}
		}
		c.set(x, y, l)
		lastX, lastY = x, y
	}
}

// row renders one line, styling runs of equal layers together.
func (c *canvas) row(y int, st styles) string {
	var b strings.Builder
	cells := c.cells[y]
	for x := 0; x < len(cells); {
		l := cells[x]
		end := x
		for end < len(cells) && cells[end] == l {
			end++
		}
		b.WriteString(st.layers[l].Render(strings.Repeat(string(glyphs[l]), end-x)))
		x = end
	}
	return b.String()
}

func mapIndexToX(idx, total, width int) int {
	if total <= 1 {
		return 0
	}
	return (idx * (width - 1)) / (total - 1)
}

func mapValueToY(value, minV, maxV float64, height int) int {
	if maxV <= minV {
		return height - 1
	}
	ratio := (value - minV) / (maxV - minV)
	ratio = math.Max(0, math.Min(1, ratio))
	return (height - 1) - int(math.Round(ratio*float64(height-1)))
}
