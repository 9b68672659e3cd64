package plugin

// #cgo CFLAGS: -I${SRCDIR}/../../include
// #cgo windows,386 LDFLAGS: -Wl,--kill-at
// #include "bridge.h"
import "C"
import (
	"unsafe"

	"github.com/justyntemme/aviutlgo/pkg/framework/debug"
)

// Entry points installed in the plugin table by aviutlgo_fill_table.

func cBool(b bool) C.BOOL {
	if b {
		return C.TRUE
	}
	return C.FALSE
}

//export aviutlgoGetOutputPluginTable
func aviutlgoGetOutputPluginTable() *C.OUTPUT_PLUGIN_TABLE {
	return (*C.OUTPUT_PLUGIN_TABLE)(Table())
}

//export aviutlgoInit
func aviutlgoInit() C.BOOL {
	return cBool(runInit())
}

//export aviutlgoExit
func aviutlgoExit() C.BOOL {
	return cBool(runExit())
}

//export aviutlgoOutput
func aviutlgoOutput(oip *C.OUTPUT_INFO) C.BOOL {
	if oip == nil {
		debug.Fatal("output called without OUTPUT_INFO")
	}
	return cBool(runOutput(newDescriptor(oip), rawHost{oip: oip}))
}

//export aviutlgoConfig
func aviutlgoConfig(hwnd C.HWND, instance C.HINSTANCE) C.BOOL {
	return cBool(runConfig(uintptr(unsafe.Pointer(hwnd)), uintptr(unsafe.Pointer(instance))))
}

//export aviutlgoConfigGet
func aviutlgoConfigGet(data unsafe.Pointer, size C.int) C.int {
	return C.int(configGet(data, int(size)))
}

//export aviutlgoConfigSet
func aviutlgoConfigSet(data unsafe.Pointer, size C.int) C.int {
	return C.int(configSet(data, int(size)))
}
