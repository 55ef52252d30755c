package engine

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrFramesExhausted is returned by a frame source with nothing left to give.
var ErrFramesExhausted = errors.New("engine: frame source exhausted")

// FrameSource yields increasing frame timestamps in milliseconds.
type FrameSource interface {
	NextFrame(ctx context.Context) (float64, error)
}

// FixedFrames yields Interval, 2*Interval, ... without waiting.
// A positive Limit caps the number of frames.
type FixedFrames struct {
	Interval float64
	Limit    int
	n        int
}

// NextFrame returns the next synthetic timestamp.
func (f *FixedFrames) NextFrame(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if f.Limit > 0 && f.n >= f.Limit {
		return 0, ErrFramesExhausted
	}
	f.n++
	return float64(f.n) * f.Interval, nil
}

// TickerFrames yields wall-clock timestamps at a fixed rate.
type TickerFrames struct {
	start  time.Time
	ticker *time.Ticker
}

// NewTickerFrames starts a ticker at fps frames per second.
func NewTickerFrames(fps int) *TickerFrames {
	if fps <= 0 {
		fps = 60
	}
	return &TickerFrames{
		start:  time.Now(),
		ticker: time.NewTicker(time.Second / time.Duration(fps)),
	}
}

// NextFrame blocks until the next tick or cancellation.
func (t *TickerFrames) NextFrame(ctx context.Context) (float64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case now := <-t.ticker.C:
		return float64(now.Sub(t.start)) / float64(time.Millisecond), nil
	}
}

// Stop releases the ticker.
func (t *TickerFrames) Stop() { t.ticker.Stop() }

// LoopOptions configures one run of the loop.
type LoopOptions struct {
	Context *Context
	Frames  FrameSource
	// Input samples the held controls; nil means no input.
	Input func() Input
	// Ready gates each frame; frames are skipped while it returns false.
	Ready   func() bool
	Surface Surface
	Sprites Sprites
	// OnEvents observes each step's events on the loop goroutine. It may call
	// Loop.Stop but not Start, Cancel or Wait, which block on the run itself.
	OnEvents func(Events)
}

type run struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Loop drives Step from a frame source on its own goroutine. At most one run
// is active; Start cancels and waits for the previous one.
type Loop struct {
	mu      sync.Mutex
	current *run
}

// Start begins a new run bound to ctx.
func (l *Loop) Start(ctx context.Context, opts LoopOptions) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current != nil {
		l.current.cancel()
		<-l.current.done
	}

	ctx, cancel := context.WithCancel(ctx)
	r := &run{cancel: cancel, done: make(chan struct{})}
	l.current = r
	go func() {
		defer close(r.done)
		r.err = drive(ctx, opts)
	}()
}

// Cancel stops the active run and waits for it to exit.
func (l *Loop) Cancel() {
	r := l.active()
	if r == nil {
		return
	}
	r.cancel()
	<-r.done
}

// Stop cancels the active run without waiting for it. No further frames are
// stepped once the current one returns.
func (l *Loop) Stop() {
	if r := l.active(); r != nil {
		r.cancel()
	}
}

// Wait blocks until the active run exits and returns its error.
// Cancellation and an exhausted frame source are not errors.
func (l *Loop) Wait() error {
	r := l.active()
	if r == nil {
		return nil
	}
	<-r.done
	return r.err
}

func (l *Loop) active() *run {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

func drive(ctx context.Context, opts LoopOptions) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		ts, err := opts.Frames.NextFrame(ctx)
		if err != nil {
			if errors.Is(err, ErrFramesExhausted) || ctx.Err() != nil {
				return nil
			}
			return err
		}
		if opts.Ready != nil && !opts.Ready() {
			continue
		}

		var in Input
		if opts.Input != nil {
			in = opts.Input()
		}
		ev := Step(opts.Context, in, ts)
		if opts.Surface != nil {
			Draw(opts.Context, opts.Surface, opts.Sprites)
		}
		if opts.OnEvents != nil {
			opts.OnEvents(ev)
		}
	}
}
