package output

import (
	"bytes"
	"fmt"
	"image"

	"github.com/justyntemme/aviutlgo/pkg/aviutl"
)

// Info is the Frame View: a read-only typed wrapper around one output job.
//
// An Info must not outlive the Output call it was passed to. The bridge
// calls Release when Output returns, after which every method that would
// reach the host fails with ErrReleased.
type Info struct {
	d        Descriptor
	host     Host
	opts     []FramesOption
	released bool
	streamed bool
}

// NewInfo validates d and wraps it together with the host callbacks. opts
// become the defaults of every stream created by Frames.
func NewInfo(d Descriptor, host Host, opts ...FramesOption) (*Info, error) {
	if d.Width < 0 || d.Height < 0 || d.FrameCount < 0 || d.FrameSize < 0 {
		return nil, fmt.Errorf("%w: negative size in %dx%d, %d frames of %d bytes",
			ErrInvalidDescriptor, d.Width, d.Height, d.FrameCount, d.FrameSize)
	}
	if d.FrameCount > 0 && (d.FrameRate.Num <= 0 || d.FrameRate.Den <= 0) {
		return nil, fmt.Errorf("%w: frame rate %s", ErrInvalidDescriptor, d.FrameRate)
	}
	return &Info{d: d, host: host, opts: opts}, nil
}

// Release ends the borrow of the host callbacks.
func (i *Info) Release() {
	i.released = true
}

func (i *Info) check() error {
	if i.released {
		return ErrReleased
	}
	return nil
}

// Descriptor returns a copy of the plain job values.
func (i *Info) Descriptor() Descriptor { return i.d }

// Flags returns the job's capability bits.
func (i *Info) Flags() aviutl.InfoFlag { return i.d.Flags }

// Width returns the frame width in pixels.
func (i *Info) Width() int { return i.d.Width }

// Height returns the frame height in pixels.
func (i *Info) Height() int { return i.d.Height }

// FrameCount returns the number of frames to produce.
func (i *Info) FrameCount() int { return i.d.FrameCount }

// FrameRate returns the frame rate exactly as the host supplied it.
func (i *Info) FrameRate() aviutl.Rational { return i.d.FrameRate }

// FrameSize returns the byte length of one raw frame.
func (i *Info) FrameSize() int { return i.d.FrameSize }

// AudioRate returns the audio sampling rate in Hz.
func (i *Info) AudioRate() int { return i.d.AudioRate }

// AudioChannels returns the audio channel count.
func (i *Info) AudioChannels() int { return i.d.AudioChannels }

// AudioCount returns the total number of audio samples.
func (i *Info) AudioCount() int { return i.d.AudioCount }

// AudioSampleSize returns the byte size of one sample across all channels.
func (i *Info) AudioSampleSize() int { return i.d.AudioSampleSize }

// SavePath returns the destination path chosen by the user.
func (i *Info) SavePath() string { return i.d.SavePath }

// DecodeFrame fetches frame index from the host and converts it to a
// top-down RGBA image with opaque alpha.
//
// It does not run the progress checkpoint; use Frames for full renders.
func (i *Info) DecodeFrame(index int) (*image.RGBA, error) {
	if err := i.check(); err != nil {
		return nil, err
	}
	if index < 0 || index >= i.d.FrameCount {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrFrameOutOfRange, index, i.d.FrameCount)
	}
	buf := i.host.Video(index, i.d.FrameSize)
	if buf == nil {
		return nil, fmt.Errorf("%w: frame %d", ErrFrameUnavailable, index)
	}
	return decodeBGR(buf, i.d.Width, i.d.Height)
}

// DecodeFrameFormat fetches frame index in an explicit pixel format and
// returns a copy of the raw bytes.
func (i *Info) DecodeFrameFormat(index int, format aviutl.FourCC) ([]byte, error) {
	if err := i.check(); err != nil {
		return nil, err
	}
	if index < 0 || index >= i.d.FrameCount {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrFrameOutOfRange, index, i.d.FrameCount)
	}
	size, err := i.formatSize(format)
	if err != nil {
		return nil, err
	}
	buf := i.host.VideoEx(index, format, size)
	if buf == nil {
		return nil, fmt.Errorf("%w: frame %d as %s", ErrFrameUnavailable, index, format)
	}
	return bytes.Clone(buf), nil
}

func (i *Info) formatSize(format aviutl.FourCC) (int, error) {
	w, h := i.d.Width, i.d.Height
	switch format {
	case aviutl.FormatRGB:
		return i.d.FrameSize, nil
	case aviutl.FormatYUY2:
		return w * 2 * h, nil
	case aviutl.FormatYC48:
		return w * 6 * h, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// Audio returns a copy of up to length samples starting at sample start.
// The bytes are passed through as the host produced them.
func (i *Info) Audio(start, length int) ([]byte, error) {
	if err := i.check(); err != nil {
		return nil, err
	}
	if start < 0 || length < 0 {
		return nil, fmt.Errorf("%w: audio range %d+%d", ErrInvalidDescriptor, start, length)
	}
	buf := i.host.Audio(start, length, i.d.AudioSampleSize)
	if buf == nil {
		return nil, fmt.Errorf("%w: samples %d+%d", ErrAudioUnavailable, start, length)
	}
	return bytes.Clone(buf), nil
}

// FrameFlag returns the host's keyframe hints for frame index.
func (i *Info) FrameFlag(index int) (aviutl.FrameFlag, error) {
	if err := i.check(); err != nil {
		return 0, err
	}
	if index < 0 || index >= i.d.FrameCount {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrFrameOutOfRange, index, i.d.FrameCount)
	}
	return i.host.FrameFlag(index), nil
}

// UpdatePreview asks the host to refresh its preview window.
func (i *Info) UpdatePreview() error {
	if err := i.check(); err != nil {
		return err
	}
	if !i.host.UpdatePreview() {
		return fmt.Errorf("%w: update preview", ErrHostCallback)
	}
	return nil
}

// IsAbort reports whether the user cancelled the job.
func (i *Info) IsAbort() (bool, error) {
	if err := i.check(); err != nil {
		return false, err
	}
	return i.host.IsAbort(), nil
}

// RestTimeDisp updates the host's remaining-time display.
func (i *Info) RestTimeDisp(now, total int) error {
	if err := i.check(); err != nil {
		return err
	}
	if !i.host.RestTimeDisp(now, total) {
		return fmt.Errorf("%w: rest time %d/%d", ErrHostCallback, now, total)
	}
	return nil
}
