package display

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"SignalWatch/internal/model"
)

// Console writes session progress and ticker reports to a terminal.
type Console struct {
	out io.Writer

	status lipgloss.Style
	buy    lipgloss.Style
	sell   lipgloss.Style
	muted  lipgloss.Style
	errs   lipgloss.Style
}

// NewConsole creates a console writing to w.
func NewConsole(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		out:    w,
		status: r.NewStyle().Bold(true),
		buy:    r.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		sell:   r.NewStyle().Foreground(lipgloss.Color("#FF0000")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#888888")),
		errs:   r.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
	}
}

// Writer returns the underlying writer, for charts drawn between reports.
func (c *Console) Writer() io.Writer { return c.out }

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) Fetching(symbol string) {
	c.println(c.status.Render(fmt.Sprintf("Fetching stock data for %s...", symbol)))
}

func (c *Console) Waiting(d time.Duration) {
	c.println(fmt.Sprintf("Waiting for %d seconds before the next analysis...", int(d.Seconds())))
}

// Report prints the buy and sell dates of an analysis.
func (c *Console) Report(a *model.Analysis) {
	c.println(c.buy.Render(FormatBuyLine(a)))
	c.println(c.sell.Render(FormatSellLine(a)))
	if latest := FormatLatest(a); latest != "" {
		c.println(c.muted.Render(latest))
	}
}

func (c *Console) Failure(symbol string, err error) {
	c.println(c.errs.Render(fmt.Sprintf("Could not analyze %s: %v", symbol, err)))
}

func (c *Console) Message(msg string) {
	c.println(msg)
}
