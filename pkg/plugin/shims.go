package plugin

import (
	"fmt"
	"runtime/debug"
	"time"
	"unsafe"

	fwdebug "github.com/justyntemme/aviutlgo/pkg/framework/debug"
	"github.com/justyntemme/aviutlgo/pkg/framework/output"
	"github.com/justyntemme/aviutlgo/pkg/framework/state"
	"github.com/justyntemme/aviutlgo/pkg/framework/text"
)

// profileSamples bounds the timings kept per output job.
const profileSamples = 1024

// lookup returns the registered plugin, logging when there is none.
func lookup(op string) (*record, bool) {
	rec, ok := current()
	if !ok {
		logger().Error("no output plugin registered", "op", op)
	}
	return rec, ok
}

// invoke calls fn and reports whether it succeeded. Errors and panics are
// logged with op; a fatal panic is passed on.
func invoke(op string, fn func() error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if fwdebug.IsFatal(r) {
				panic(r)
			}
			logger().Error("plugin panicked", "op", op, "panic", r, "stack", string(debug.Stack()))
			ok = false
		}
	}()
	if err := fn(); err != nil {
		logger().Error("plugin call failed", "op", op, "error", err)
		return false
	}
	return true
}

func runInit() bool {
	rec, ok := lookup("init")
	if !ok {
		return false
	}
	i, ok := rec.plugin.(Initializer)
	if !ok {
		return true
	}
	return invoke("init", i.Init)
}

func runExit() bool {
	rec, ok := lookup("exit")
	if !ok {
		return false
	}
	f, ok := rec.plugin.(Finalizer)
	if !ok {
		return true
	}
	return invoke("exit", f.Exit)
}

func runConfig(hwnd, instance uintptr) bool {
	rec, ok := lookup("config")
	if !ok {
		return false
	}
	c, ok := rec.plugin.(Configurer)
	if !ok {
		logger().Warn("config requested from plugin without settings", "name", rec.info.Name)
		return false
	}
	return invoke("config", func() error { return c.Config(hwnd, instance) })
}

// runOutput wraps one job in an Info, hands it to the plugin and releases
// it when the plugin returns.
func runOutput(d output.Descriptor, host output.Host) bool {
	rec, ok := lookup("output")
	if !ok {
		return false
	}
	log := logger().With("op", "output", "path", d.SavePath)

	profiler := fwdebug.NewProfiler(profileSamples)
	profiler.SetEnabled(log.IsDebug())
	info, err := output.NewInfo(d, host,
		output.WithProfiler(profiler),
		output.WithLogger(fwdebug.Named("frames")))
	if err != nil {
		log.Error("rejected output job", "error", err)
		return false
	}
	defer info.Release()

	log.Info("output started",
		"flags", d.Flags,
		"size", [2]int{d.Width, d.Height},
		"rate", d.FrameRate,
		"frames", d.FrameCount)
	start := time.Now()
	ok = invoke("output", func() error {
		defer profiler.Start("output")()
		return rec.plugin.Output(info)
	})
	profiler.Log(log)
	log.Info("output finished", "ok", ok, "elapsed", time.Since(start))
	return ok
}

// savePath decodes the host's Shift-JIS save path. A path that does not
// decode is a host contract breach.
func savePath(raw []byte) string {
	path, err := text.Decode(raw)
	if err != nil {
		fwdebug.Fatal("undecodable save path", "raw", fmt.Sprintf("%x", raw), "error", err)
	}
	return path
}

// configGet copies the configuration buffer to data, which has room for
// size bytes, and returns the buffer length. A nil data only queries the
// length. A destination that is too small is a host contract breach.
func configGet(data unsafe.Pointer, size int) int {
	buf := state.Default()
	if data == nil {
		return buf.Len()
	}
	if size < 0 {
		fwdebug.Fatal("negative config buffer size", "size", size)
	}
	n, err := buf.ReadInto(unsafe.Slice((*byte)(data), size))
	if err != nil {
		fwdebug.Fatal("config buffer too small", "capacity", size, "length", buf.Len(), "error", err)
	}
	return n
}

// configSet replaces the configuration buffer with size bytes at data and
// returns the number of bytes stored. A zero size clears it; a nil data
// with a positive size is a host contract breach.
func configSet(data unsafe.Pointer, size int) int {
	buf := state.Default()
	switch {
	case size < 0:
		fwdebug.Fatal("negative config buffer size", "size", size)
	case size == 0:
		return buf.Replace(nil)
	case data == nil:
		fwdebug.Fatal("config set from NULL", "size", size)
	}
	return buf.Replace(unsafe.Slice((*byte)(data), size))
}
