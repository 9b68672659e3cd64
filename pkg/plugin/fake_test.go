package plugin

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/justyntemme/aviutlgo/pkg/aviutl"
	"github.com/justyntemme/aviutlgo/pkg/framework/debug"
	"github.com/justyntemme/aviutlgo/pkg/framework/output"
	"github.com/justyntemme/aviutlgo/pkg/framework/plugin"
	"github.com/justyntemme/aviutlgo/pkg/framework/state"
)

var errBoom = errors.New("boom")

// testPlugin records every call it receives.
type testPlugin struct {
	info plugin.Info

	outputErr   error
	outputPanic interface{}
	frames      []int
	last        *output.Info
}

func newTestPlugin() *testPlugin {
	return &testPlugin{info: plugin.Info{
		Name:        "Test Output",
		Filters:     []plugin.FileFilter{{Label: "WebP images", Pattern: "*.webp"}},
		Information: "Test Output v1",
	}}
}

func (p *testPlugin) GetInfo() plugin.Info { return p.info }

func (p *testPlugin) Output(info *output.Info) error {
	p.last = info
	if p.outputPanic != nil {
		panic(p.outputPanic)
	}
	for f := range info.Frames().All() {
		p.frames = append(p.frames, f.Index)
	}
	return p.outputErr
}

// lifecyclePlugin implements every optional interface.
type lifecyclePlugin struct {
	testPlugin
	initErr  error
	exitErr  error
	inits    int
	exits    int
	hwnd     uintptr
	instance uintptr
}

func (p *lifecyclePlugin) Init() error { p.inits++; return p.initErr }
func (p *lifecyclePlugin) Exit() error { p.exits++; return p.exitErr }

func (p *lifecyclePlugin) Config(hwnd, instance uintptr) error {
	p.hwnd, p.instance = hwnd, instance
	return nil
}

// stubHost serves uniform grey frames and never aborts.
type stubHost struct {
	videoCalls int
}

func (h *stubHost) Video(frame, size int) []byte {
	h.videoCalls++
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = 0x80
	}
	return buf
}

func (h *stubHost) VideoEx(frame int, format aviutl.FourCC, size int) []byte {
	return h.Video(frame, size)
}

func (h *stubHost) Audio(start, length, sampleSize int) []byte { return nil }
func (h *stubHost) FrameFlag(frame int) aviutl.FrameFlag      { return 0 }
func (h *stubHost) IsAbort() bool                             { return false }
func (h *stubHost) RestTimeDisp(now, total int) bool          { return true }
func (h *stubHost) UpdatePreview() bool                       { return true }

func descriptor(w, h, n int) output.Descriptor {
	return output.Descriptor{
		Flags:      aviutl.InfoFlagVideo,
		Width:      w,
		Height:     h,
		FrameRate:  aviutl.Rational{Num: 30, Den: 1},
		FrameCount: n,
		FrameSize:  output.RowStride(w) * h,
		SavePath:   "out.webp",
	}
}

// setup silences logging and clears process state after the test.
func setup(t *testing.T) {
	t.Helper()
	debug.SetOutput(io.Discard)
	t.Cleanup(func() {
		Reset()
		state.Reset()
		debug.SetOutput(os.Stderr)
	})
}
