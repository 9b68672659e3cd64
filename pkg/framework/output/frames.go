package output

import (
	"fmt"
	"image"
	"iter"
	"math/big"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/justyntemme/aviutlgo/pkg/framework/debug"
)

// Frame is one decoded frame and its presentation time.
type Frame struct {
	Index int
	Image *image.RGBA
	// Time is (Index+1)/rate seconds, exact.
	Time *big.Rat
}

// Seconds returns Time as floating-point seconds.
func (f Frame) Seconds() float64 {
	s, _ := f.Time.Float64()
	return s
}

type framesConfig struct {
	now      func() time.Time
	interval time.Duration
	profiler *debug.Profiler
	logger   hclog.Logger
}

// FramesOption configures a stream.
type FramesOption func(*framesConfig)

// WithClock replaces time.Now for the checkpoint timer.
func WithClock(now func() time.Time) FramesOption {
	return func(c *framesConfig) { c.now = now }
}

// WithInterval sets the minimum time between checkpoints.
func WithInterval(d time.Duration) FramesOption {
	return func(c *framesConfig) { c.interval = d }
}

// WithProfiler records the time spent decoding each frame under "decode".
func WithProfiler(p *debug.Profiler) FramesOption {
	return func(c *framesConfig) { c.profiler = p }
}

// WithLogger sets the logger for checkpoint diagnostics.
func WithLogger(l hclog.Logger) FramesOption {
	return func(c *framesConfig) { c.logger = l }
}

// Frames is the Frame Stream: a lazy, finite, single-use sequence of the
// job's frames in order.
//
// Before each frame, once at least the checkpoint interval has passed since
// the last host interaction, the stream checks for an abort, refreshes the
// preview and reports progress. Only the single consumer that drains the
// stream keeps the host's UI alive; a consumer that stops early simply skips
// the remaining checkpoints.
//
//	frames := info.Frames()
//	for frames.Next() {
//		f := frames.Frame()
//		...
//	}
//	if err := frames.Err(); err != nil {
//		return err
//	}
type Frames struct {
	info     *Info
	cp       *Checkpoint
	profiler *debug.Profiler

	next  int
	total int
	step  *big.Rat

	cur     Frame
	err     error
	aborted bool
	done    bool
}

// Frames returns the stream of this job's frames. Only the first call
// returns a usable stream; later ones fail with ErrStreamConsumed.
func (i *Info) Frames(opts ...FramesOption) *Frames {
	cfg := framesConfig{interval: checkpointInterval()}
	for _, opt := range i.opts {
		opt(&cfg)
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = defaultLogger()
	}

	f := &Frames{
		info:     i,
		profiler: cfg.profiler,
		total:    i.d.FrameCount,
	}
	switch {
	case i.released:
		f.fail(ErrReleased)
		return f
	case i.streamed:
		f.fail(ErrStreamConsumed)
		return f
	}
	i.streamed = true

	if f.total > 0 {
		// One frame lasts scale/rate seconds.
		f.step = new(big.Rat).Inv(i.d.FrameRate.Rat())
	}
	f.cp = NewCheckpoint(i, cfg.now, cfg.interval, cfg.logger)
	return f
}

func (f *Frames) fail(err error) {
	f.err = err
	f.done = true
}

// Next advances to the next frame. It returns false when every frame has
// been produced, the user aborted, or an error occurred.
func (f *Frames) Next() bool {
	if f.done {
		return false
	}
	if f.next >= f.total {
		f.done = true
		return false
	}
	if err := f.info.check(); err != nil {
		f.fail(err)
		return false
	}

	if f.cp.Poll(f.next, f.total) {
		f.aborted = true
		f.done = true
		return false
	}

	stop := f.profiler.Start("decode")
	img, err := f.info.DecodeFrame(f.next)
	stop()
	if err != nil {
		f.fail(fmt.Errorf("decode frame %d: %w", f.next, err))
		return false
	}

	f.next++
	t := new(big.Rat).SetInt64(int64(f.next))
	t.Mul(t, f.step)
	f.cur = Frame{Index: f.next - 1, Image: img, Time: t}
	return true
}

// Frame returns the frame produced by the last successful Next.
func (f *Frames) Frame() Frame {
	return f.cur
}

// Err returns the error that ended the stream, if any. An abort is not an
// error.
func (f *Frames) Err() error {
	return f.err
}

// Aborted reports whether the stream ended because the user cancelled.
func (f *Frames) Aborted() bool {
	return f.aborted
}

// Produced returns the number of frames yielded so far.
func (f *Frames) Produced() int {
	return f.next
}

// All returns the remaining frames as an iterator. Check Err and Aborted
// after the loop.
func (f *Frames) All() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for f.Next() {
			if !yield(f.cur) {
				return
			}
		}
	}
}
