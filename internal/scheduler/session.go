package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"

	"SignalWatch/internal/chart"
	"SignalWatch/internal/console"
	"SignalWatch/internal/display"
	"SignalWatch/internal/model"
)

// ErrInterrupted reports that the user or the process stopped the session
// while it was sleeping or prompting.
var ErrInterrupted = errors.New("analysis interrupted")

// Analyzer runs the fetch, compute and detect pipeline for one ticker.
type Analyzer interface {
	Analyze(ctx context.Context, symbol string) (*model.Analysis, error)
}

// Plan is what the user chose at the start of a session.
type Plan struct {
	Tickers  []string
	Interval time.Duration
	Zoom     *model.DateRange
}

// CycleResult counts the outcome of one pass over the tickers.
type CycleResult struct {
	Analyzed int
	Failed   int
}

// Session drives the interactive analyze, wait, ask loop.
type Session struct {
	Analyzer Analyzer
	Renderer chart.Renderer
	Console  *display.Console
	Prompter console.Prompter
	Clock    Clock
}

// NewSession creates a Session using the system clock.
func NewSession(a Analyzer, r chart.Renderer, c *display.Console, p console.Prompter) *Session {
	return &Session{
		Analyzer: a,
		Renderer: r,
		Console:  c,
		Prompter: p,
		Clock:    RealClock(),
	}
}

// Run prompts for a plan and loops until the user stops or the session is
// interrupted. Both count as a clean exit; only setup input errors and
// unexpected prompt failures are returned.
func (s *Session) Run(ctx context.Context) error {
	plan, err := s.Setup(ctx)
	if err == nil {
		err = s.Loop(ctx, plan)
	}
	if errors.Is(err, ErrInterrupted) {
		s.Console.Message("Real-time stock analysis stopped.")
		log.Info("session interrupted")
		return nil
	}
	return err
}

// Setup asks for tickers, refresh interval and the optional zoom window.
func (s *Session) Setup(ctx context.Context) (Plan, error) {
	tickers, err := s.Prompter.Tickers(ctx)
	if err != nil {
		return Plan{}, classify("read tickers", err)
	}
	interval, err := s.Prompter.RefreshInterval(ctx)
	if err != nil {
		return Plan{}, classify("read interval", err)
	}
	zoom, err := s.Prompter.ZoomRange(ctx)
	if err != nil {
		return Plan{}, classify("read zoom range", err)
	}
	return Plan{Tickers: tickers, Interval: interval, Zoom: zoom}, nil
}

// Loop analyzes every ticker, sleeps until the next refresh and then asks
// whether to stop, repeating until told to.
func (s *Session) Loop(ctx context.Context, plan Plan) error {
	schedule := cron.Every(plan.Interval)
	log.Info("scheduler started", "tickers", plan.Tickers, "interval", plan.Interval)

	for cycle := 1; ; cycle++ {
		res := s.RunCycle(ctx, plan.Tickers, plan.Zoom)
		log.Info("cycle complete", "cycle", cycle, "analyzed", res.Analyzed, "failed", res.Failed)
		if err := ctx.Err(); err != nil {
			return classify("analysis", err)
		}

		now := s.Clock.Now()
		wait := schedule.Next(now).Sub(now)
		s.Console.Waiting(plan.Interval)
		if err := s.Clock.Sleep(ctx, wait); err != nil {
			return classify("wait", err)
		}

		stop, err := s.Prompter.ConfirmStop(ctx)
		if err != nil {
			return classify("read stop answer", err)
		}
		if stop {
			s.Console.Message("Stopping the real-time analysis.")
			log.Info("scheduler stopped", "cycles", cycle)
			return nil
		}
	}
}

// RunCycle analyzes and charts each ticker in order. A failing ticker is
// reported and skipped; the rest of the batch still runs.
func (s *Session) RunCycle(ctx context.Context, tickers []string, zoom *model.DateRange) CycleResult {
	var res CycleResult
	for _, symbol := range tickers {
		if ctx.Err() != nil {
			break
		}
		s.Console.Fetching(symbol)
		a, err := s.Analyzer.Analyze(ctx, symbol)
		if err != nil {
			log.Error("analysis failed", "symbol", symbol, "err", err)
			s.Console.Failure(symbol, err)
			res.Failed++
			continue
		}
		s.Console.Report(a)
		if err := s.Renderer.Render(s.Console.Writer(), chart.FromAnalysis(a, zoom)); err != nil {
			log.Warn("render chart", "symbol", symbol, "err", err)
		}
		res.Analyzed++
	}
	return res
}

// classify maps a Ctrl+C inside a prompt or a cancelled context onto
// ErrInterrupted.
func classify(op string, err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrInterrupted)
	}
	return fmt.Errorf("%s: %w", op, err)
}
