package plugin

// #include "bridge.h"
import "C"
import (
	"unsafe"

	"github.com/justyntemme/aviutlgo/pkg/aviutl"
	"github.com/justyntemme/aviutlgo/pkg/framework/output"
)

// rawHost adapts the callbacks of one OUTPUT_INFO record to output.Host.
// Returned slices alias host memory.
type rawHost struct {
	oip *C.OUTPUT_INFO
}

func hostBytes(p unsafe.Pointer, n int) []byte {
	if p == nil {
		return nil
	}
	if n <= 0 {
		return []byte{}
	}
	return unsafe.Slice((*byte)(p), n)
}

func (h rawHost) Video(frame, size int) []byte {
	return hostBytes(C.aviutlgo_get_video(h.oip, C.int(frame)), size)
}

func (h rawHost) VideoEx(frame int, format aviutl.FourCC, size int) []byte {
	return hostBytes(C.aviutlgo_get_video_ex(h.oip, C.int(frame), C.DWORD(format)), size)
}

func (h rawHost) Audio(start, length, sampleSize int) []byte {
	var readed C.int
	p := C.aviutlgo_get_audio(h.oip, C.int(start), C.int(length), &readed)
	return hostBytes(p, int(readed)*sampleSize)
}

func (h rawHost) FrameFlag(frame int) aviutl.FrameFlag {
	return aviutl.FrameFlag(C.aviutlgo_get_flag(h.oip, C.int(frame)))
}

func (h rawHost) IsAbort() bool {
	return C.aviutlgo_is_abort(h.oip) != 0
}

func (h rawHost) RestTimeDisp(now, total int) bool {
	return C.aviutlgo_rest_time_disp(h.oip, C.int(now), C.int(total)) != 0
}

func (h rawHost) UpdatePreview() bool {
	return C.aviutlgo_update_preview(h.oip) != 0
}

// newDescriptor copies the plain fields of oip.
func newDescriptor(oip *C.OUTPUT_INFO) output.Descriptor {
	var path string
	if oip.savefile != nil {
		path = savePath([]byte(C.GoString((*C.char)(unsafe.Pointer(oip.savefile)))))
	}
	return output.Descriptor{
		Flags:           aviutl.InfoFlag(oip.flag),
		Width:           int(oip.w),
		Height:          int(oip.h),
		FrameRate:       aviutl.Rational{Num: int32(oip.rate), Den: int32(oip.scale)},
		FrameCount:      int(oip.n),
		FrameSize:       int(oip.size),
		AudioRate:       int(oip.audio_rate),
		AudioChannels:   int(oip.audio_ch),
		AudioCount:      int(oip.audio_n),
		AudioSampleSize: int(oip.audio_size),
		SavePath:        path,
	}
}
