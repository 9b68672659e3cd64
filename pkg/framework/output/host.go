// Package output is the typed side of the output plugin ABI. Info is a
// read-only view of one OUTPUT_INFO record, and Frames turns its frame
// callback into a lazy, abortable sequence of decoded images.
package output

import "github.com/justyntemme/aviutlgo/pkg/aviutl"

// Host is the set of callbacks the host supplies with each output job.
//
// A Host is borrowed: it is valid only for the duration of the host call
// that supplied it, and slices it returns alias host memory that is valid
// only until the next call into the Host.
type Host interface {
	// Video returns frame in the default bottom-up BGR layout, size bytes
	// long, or nil if the host could not produce it.
	Video(frame, size int) []byte

	// VideoEx is Video for an explicit pixel format.
	VideoEx(frame int, format aviutl.FourCC, size int) []byte

	// Audio returns up to length samples starting at start, each
	// sampleSize bytes, or nil on failure.
	Audio(start, length, sampleSize int) []byte

	// FrameFlag returns the host's flags for frame.
	FrameFlag(frame int) aviutl.FrameFlag

	// IsAbort reports whether the user asked to cancel the job.
	IsAbort() bool

	// RestTimeDisp shows the remaining-time estimate for now of total
	// frames. It returns false on failure.
	RestTimeDisp(now, total int) bool

	// UpdatePreview refreshes the host's preview window. It returns false
	// on failure.
	UpdatePreview() bool
}

// Descriptor holds the plain values of an OUTPUT_INFO record.
type Descriptor struct {
	Flags      aviutl.InfoFlag
	Width      int
	Height     int
	FrameRate  aviutl.Rational
	FrameCount int
	FrameSize  int

	AudioRate       int
	AudioChannels   int
	AudioCount      int
	AudioSampleSize int

	SavePath string
}
