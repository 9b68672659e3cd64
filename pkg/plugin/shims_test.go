package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/aviutlgo/pkg/framework/debug"
	"github.com/justyntemme/aviutlgo/pkg/framework/output"
)

func TestShimsWithoutPlugin(t *testing.T) {
	setup(t)

	assert.False(t, runInit())
	assert.False(t, runExit())
	assert.False(t, runConfig(0, 0))
	assert.False(t, runOutput(descriptor(2, 2, 1), &stubHost{}))
}

func TestLifecycleOptional(t *testing.T) {
	setup(t)
	Register(newTestPlugin())

	assert.True(t, runInit())
	assert.True(t, runExit())
	assert.False(t, runConfig(1, 2), "no settings dialog")
}

func TestLifecycleCalls(t *testing.T) {
	setup(t)
	p := &lifecyclePlugin{testPlugin: *newTestPlugin()}
	p.info.HasConfig = true
	Register(p)

	assert.True(t, runInit())
	assert.True(t, runConfig(0x1234, 0x5678))
	assert.True(t, runExit())
	assert.Equal(t, 1, p.inits)
	assert.Equal(t, 1, p.exits)
	assert.Equal(t, uintptr(0x1234), p.hwnd)
	assert.Equal(t, uintptr(0x5678), p.instance)

	p.initErr = errBoom
	p.exitErr = errBoom
	assert.False(t, runInit())
	assert.False(t, runExit())
}

func TestRunOutput(t *testing.T) {
	setup(t)
	p := newTestPlugin()
	Register(p)

	host := &stubHost{}
	require.True(t, runOutput(descriptor(4, 2, 3), host))
	assert.Equal(t, []int{0, 1, 2}, p.frames)
	assert.Equal(t, 3, host.videoCalls)
	assert.Equal(t, "out.webp", p.last.SavePath())
}

func TestRunOutputReleasesInfo(t *testing.T) {
	setup(t)
	p := newTestPlugin()
	Register(p)

	require.True(t, runOutput(descriptor(4, 2, 1), &stubHost{}))
	require.NotNil(t, p.last)

	_, err := p.last.DecodeFrame(0)
	assert.ErrorIs(t, err, output.ErrReleased)
}

func TestRunOutputError(t *testing.T) {
	setup(t)
	p := newTestPlugin()
	p.outputErr = errBoom
	Register(p)

	assert.False(t, runOutput(descriptor(4, 2, 1), &stubHost{}))
}

func TestRunOutputRejectsDescriptor(t *testing.T) {
	setup(t)
	p := newTestPlugin()
	Register(p)

	d := descriptor(4, 2, 1)
	d.FrameRate.Den = 0
	assert.False(t, runOutput(d, &stubHost{}))
	assert.Nil(t, p.last, "plugin must not be called")
}

func TestRunOutputRecoversPanic(t *testing.T) {
	setup(t)
	p := newTestPlugin()
	p.outputPanic = "index out of range"
	Register(p)

	assert.False(t, runOutput(descriptor(4, 2, 1), &stubHost{}))
}

func TestRunOutputPassesFatal(t *testing.T) {
	setup(t)
	p := newTestPlugin()
	p.outputPanic = &debug.FatalError{Msg: "corrupt configuration"}
	Register(p)

	requireFatal(t, func() { runOutput(descriptor(4, 2, 1), &stubHost{}) })
}

func TestSavePath(t *testing.T) {
	setup(t)

	assert.Equal(t, `C:\out\clip.webp`, savePath([]byte(`C:\out\clip.webp`)))
	assert.Equal(t, `C:\画像.webp`, savePath(append([]byte(`C:\`), 0x89, 0xe6, 0x91, 0x9c, '.', 'w', 'e', 'b', 'p')))
	assert.Equal(t, "", savePath(nil))
}

func TestSavePathUndecodableIsFatal(t *testing.T) {
	setup(t)

	requireFatal(t, func() { savePath([]byte{0x81, 0x20}) })
	requireFatal(t, func() { savePath([]byte{'a', 0x81, 0x20, '.', 'w', 'e', 'b', 'p'}) })
}
