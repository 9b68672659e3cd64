// Package aviutl mirrors the constants and value types of the AviUtl output
// plugin ABI declared in include/aviutl/output.h.
package aviutl

import (
	"fmt"
	"math/big"
	"strings"
)

// InfoFlag is the flag field of OUTPUT_INFO.
type InfoFlag int32

// Values must match OUTPUT_INFO_FLAG_* in output.h.
const (
	InfoFlagVideo InfoFlag = 0x0001
	InfoFlagAudio InfoFlag = 0x0002
	InfoFlagBatch InfoFlag = 0x0004
)

// Video reports whether the job carries video.
func (f InfoFlag) Video() bool { return f&InfoFlagVideo != 0 }

// Audio reports whether the job carries audio.
func (f InfoFlag) Audio() bool { return f&InfoFlagAudio != 0 }

// Batch reports whether the job runs from the batch output queue.
func (f InfoFlag) Batch() bool { return f&InfoFlagBatch != 0 }

func (f InfoFlag) String() string {
	var parts []string
	if f.Video() {
		parts = append(parts, "video")
	}
	if f.Audio() {
		parts = append(parts, "audio")
	}
	if f.Batch() {
		parts = append(parts, "batch")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// FrameFlag is the value returned by func_get_flag for a single frame.
type FrameFlag int32

const (
	FrameFlagKeyframe FrameFlag = 0x0001
	FrameFlagCopy     FrameFlag = 0x0002
)

// Keyframe reports whether the host marked the frame as a keyframe.
func (f FrameFlag) Keyframe() bool { return f&FrameFlagKeyframe != 0 }

// Copy reports whether the frame repeats the previous one.
func (f FrameFlag) Copy() bool { return f&FrameFlagCopy != 0 }

// FourCC names a pixel format accepted by func_get_video_ex.
type FourCC uint32

// MakeFourCC packs four characters the way mmioFOURCC does.
func MakeFourCC(a, b, c, d byte) FourCC {
	return FourCC(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

// Formats understood by func_get_video_ex. Zero requests the default
// bottom-up BGR layout.
var (
	FormatRGB  FourCC = 0
	FormatYUY2        = MakeFourCC('Y', 'U', 'Y', '2')
	FormatYC48        = MakeFourCC('Y', 'C', '4', '8')
)

func (c FourCC) String() string {
	if c == 0 {
		return "RGB"
	}
	return string([]byte{byte(c), byte(c >> 8), byte(c >> 16), byte(c >> 24)})
}

// Rational is a frame rate exactly as the host supplied it (rate/scale).
// It is never reduced.
type Rational struct {
	Num int32
	Den int32
}

// Valid reports whether both terms are non-zero.
func (r Rational) Valid() bool {
	return r.Num != 0 && r.Den != 0
}

// Rat returns r as an exact big.Rat. It panics if r.Den is zero.
func (r Rational) Rat() *big.Rat {
	return big.NewRat(int64(r.Num), int64(r.Den))
}

// Float64 returns r as frames per second. Use it for display only.
func (r Rational) Float64() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}
