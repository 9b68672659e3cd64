package output

import (
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/justyntemme/aviutlgo/pkg/framework/debug"
)

// EnvCheckpointInterval overrides DefaultCheckpointInterval, in milliseconds.
const EnvCheckpointInterval = "AVIUTLGO_CHECKPOINT_MS"

// DefaultCheckpointInterval is the minimum wall-clock time between two
// rounds of host UI callbacks during a render.
const DefaultCheckpointInterval = time.Second

func checkpointInterval() time.Duration {
	if v := os.Getenv(EnvCheckpointInterval); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return DefaultCheckpointInterval
}

// Effects are the host callbacks a checkpoint performs. *Info implements it.
type Effects interface {
	IsAbort() (bool, error)
	UpdatePreview() error
	RestTimeDisp(now, total int) error
}

// Checkpoint throttles host UI callbacks during a long synchronous render.
// It is owned by a single stream.
type Checkpoint struct {
	effects  Effects
	now      func() time.Time
	interval time.Duration
	last     time.Time
	logger   hclog.Logger
}

// NewCheckpoint starts the interval timer at now().
func NewCheckpoint(effects Effects, now func() time.Time, interval time.Duration, logger hclog.Logger) *Checkpoint {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Checkpoint{
		effects:  effects,
		now:      now,
		interval: interval,
		last:     now(),
		logger:   logger,
	}
}

// Due reports whether the interval has elapsed since the last checkpoint.
func (c *Checkpoint) Due() bool {
	return c.now().Sub(c.last) >= c.interval
}

// Run asks the host whether to abort and, if not, refreshes the preview and
// the remaining-time display for done of total frames. It returns true when
// the user aborted.
//
// A failing UI callback is logged and skipped; it never stops the render.
func (c *Checkpoint) Run(done, total int) (aborted bool) {
	c.last = c.now()

	abort, err := c.effects.IsAbort()
	if err != nil {
		c.logger.Warn("abort query failed, continuing", "error", err)
	} else if abort {
		c.logger.Info("render aborted by host", "done", done, "total", total)
		return true
	}

	if err := c.effects.UpdatePreview(); err != nil {
		c.logger.Warn("preview refresh failed", "frame", done, "error", err)
	}
	if err := c.effects.RestTimeDisp(done, total); err != nil {
		c.logger.Warn("remaining time display failed", "frame", done, "error", err)
	}
	return false
}

// Poll runs the checkpoint if it is due.
func (c *Checkpoint) Poll(done, total int) (aborted bool) {
	if !c.Due() {
		return false
	}
	return c.Run(done, total)
}

func defaultLogger() hclog.Logger {
	return debug.Named("frames")
}
