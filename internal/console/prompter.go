package console

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"SignalWatch/internal/model"
)

// Prompter collects the interactive inputs of a session. A Ctrl+C inside a
// prompt surfaces as terminal.InterruptErr.
type Prompter interface {
	Tickers(ctx context.Context) ([]string, error)
	RefreshInterval(ctx context.Context) (time.Duration, error)
	ZoomRange(ctx context.Context) (*model.DateRange, error)
	ConfirmStop(ctx context.Context) (bool, error)
}

// SurveyPrompter asks questions on the terminal with survey.
type SurveyPrompter struct {
	DefaultTickers  []string
	DefaultInterval int // seconds

	opts []survey.AskOpt
}

// NewSurveyPrompter creates a prompter. When stdio is non-nil prompts use
// it instead of the process terminal.
func NewSurveyPrompter(defaultTickers []string, defaultInterval int, stdio *terminal.Stdio) *SurveyPrompter {
	p := &SurveyPrompter{DefaultTickers: defaultTickers, DefaultInterval: defaultInterval}
	if stdio != nil {
		p.opts = append(p.opts, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
	}
	return p
}

func (p *SurveyPrompter) Tickers(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var input string
	prompt := &survey.Input{
		Message: "Enter stock tickers (comma-separated, e.g., AAPL,GOOG,MSFT):",
		Default: strings.Join(p.DefaultTickers, ","),
	}
	if err := survey.AskOne(prompt, &input, p.opts...); err != nil {
		return nil, err
	}
	return ParseTickers(input)
}

func (p *SurveyPrompter) RefreshInterval(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var input string
	prompt := &survey.Input{
		Message: "Enter interval for fetching data (in seconds, e.g., 3600 for 1 hour):",
		Help:    "Whole number of seconds to wait between analysis cycles.",
	}
	if p.DefaultInterval > 0 {
		prompt.Default = strconv.Itoa(p.DefaultInterval)
	}
	if err := survey.AskOne(prompt, &input, p.opts...); err != nil {
		return 0, err
	}
	return ParseInterval(input)
}

func (p *SurveyPrompter) ZoomRange(ctx context.Context) (*model.DateRange, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var zoom bool
	confirm := &survey.Confirm{
		Message: "Do you want to zoom into a specific date range?",
		Default: false,
	}
	if err := survey.AskOne(confirm, &zoom, p.opts...); err != nil {
		return nil, err
	}
	if !zoom {
		return nil, nil
	}

	var start, end string
	if err := survey.AskOne(&survey.Input{Message: "Enter the start date (YYYY-MM-DD):"}, &start, p.opts...); err != nil {
		return nil, err
	}
	if err := survey.AskOne(&survey.Input{Message: "Enter the end date (YYYY-MM-DD):"}, &end, p.opts...); err != nil {
		return nil, err
	}
	return ParseZoomRange(start, end)
}

func (p *SurveyPrompter) ConfirmStop(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var stop bool
	prompt := &survey.Confirm{
		Message: "Do you want to stop the analysis?",
		Default: false,
	}
	err := survey.AskOne(prompt, &stop, p.opts...)
	return stop, err
}
