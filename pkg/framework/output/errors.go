package output

import "errors"

var (
	// ErrInvalidDescriptor is returned by NewInfo for impossible values.
	ErrInvalidDescriptor = errors.New("output: invalid job descriptor")
	// ErrReleased is returned by every method of an Info, or of a stream
	// built from it, once the host call that supplied it has returned.
	ErrReleased = errors.New("output: job descriptor used after its host call returned")
	// ErrFrameOutOfRange is returned for a frame index outside [0, FrameCount).
	ErrFrameOutOfRange = errors.New("output: frame index out of range")
	// ErrFrameUnavailable is returned when the host yields no frame buffer.
	ErrFrameUnavailable = errors.New("output: host returned no frame")
	// ErrShortFrame is returned when a frame buffer cannot hold width*height pixels.
	ErrShortFrame = errors.New("output: frame buffer too short")
	// ErrUnsupportedFormat is returned for a pixel format of unknown size.
	ErrUnsupportedFormat = errors.New("output: unsupported pixel format")
	// ErrAudioUnavailable is returned when the host yields no audio buffer.
	ErrAudioUnavailable = errors.New("output: host returned no audio")
	// ErrHostCallback is returned when a host UI callback reports failure.
	ErrHostCallback = errors.New("output: host callback failed")
	// ErrStreamConsumed is the error of a second stream over the same Info.
	ErrStreamConsumed = errors.New("output: frame stream already consumed")
)
