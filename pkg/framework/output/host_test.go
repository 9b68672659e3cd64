package output

import (
	"time"

	"github.com/justyntemme/aviutlgo/pkg/aviutl"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// fakeHost renders frames whose pixels encode the frame index and position.
type fakeHost struct {
	w, h   int
	stride int

	clock     *fakeClock
	frameCost time.Duration

	abortOnQuery int // 1-based abort query that returns true; 0 never
	previewFails bool
	restFails    bool
	failFrame    int // frame whose retrieval returns nil; -1 never

	videoCalls   []int
	abortQueries int
	previews     int
	progress     [][2]int
	events       []string
}

func newFakeHost(w, h int) *fakeHost {
	return &fakeHost{w: w, h: h, stride: RowStride(w), failFrame: -1}
}

// pixel returns the BGR triple the host stores for (x, y) in top-down
// coordinates of frame.
func pixel(frame, x, y int) (b, g, r byte) {
	return byte(frame), byte(x), byte(y + 100)
}

func (h *fakeHost) Video(frame, size int) []byte {
	h.videoCalls = append(h.videoCalls, frame)
	h.events = append(h.events, "video")
	if h.clock != nil {
		h.clock.Advance(h.frameCost)
	}
	if frame == h.failFrame {
		return nil
	}
	buf := make([]byte, size)
	for y := 0; y < h.h; y++ {
		row := buf[(h.h-1-y)*h.stride:]
		for x := 0; x < h.w; x++ {
			row[3*x], row[3*x+1], row[3*x+2] = pixel(frame, x, y)
		}
	}
	return buf
}

func (h *fakeHost) VideoEx(frame int, format aviutl.FourCC, size int) []byte {
	if format == aviutl.FormatRGB {
		return h.Video(frame, size)
	}
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = byte(frame)
	}
	return buf
}

func (h *fakeHost) Audio(start, length, sampleSize int) []byte {
	if length == 0 {
		return nil
	}
	buf := make([]byte, length*sampleSize)
	for i := range buf {
		buf[i] = byte(start + i)
	}
	return buf
}

func (h *fakeHost) FrameFlag(frame int) aviutl.FrameFlag {
	if frame%10 == 0 {
		return aviutl.FrameFlagKeyframe
	}
	return 0
}

func (h *fakeHost) IsAbort() bool {
	h.abortQueries++
	h.events = append(h.events, "abort")
	return h.abortOnQuery != 0 && h.abortQueries >= h.abortOnQuery
}

func (h *fakeHost) RestTimeDisp(now, total int) bool {
	h.progress = append(h.progress, [2]int{now, total})
	h.events = append(h.events, "rest")
	return !h.restFails
}

func (h *fakeHost) UpdatePreview() bool {
	h.previews++
	h.events = append(h.events, "preview")
	return !h.previewFails
}

func descriptor(w, h, n int, rate aviutl.Rational) Descriptor {
	return Descriptor{
		Flags:      aviutl.InfoFlagVideo,
		Width:      w,
		Height:     h,
		FrameRate:  rate,
		FrameCount: n,
		FrameSize:  RowStride(w) * h,
		SavePath:   `C:\out\movie.webp`,
	}
}
