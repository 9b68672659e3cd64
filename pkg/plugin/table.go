package plugin

// #include "bridge.h"
import "C"
import (
	"bytes"
	"unsafe"

	"github.com/justyntemme/aviutlgo/pkg/framework/plugin"
	"github.com/justyntemme/aviutlgo/pkg/framework/text"
)

// buildTable encodes info and lays out an OUTPUT_PLUGIN_TABLE in the
// process arena. The returned table and every string it points to stay
// valid for the life of the process.
func buildTable(info plugin.Info) unsafe.Pointer {
	name := processArena.bytes(text.EncodeCString(info.Name))
	filter := processArena.bytes(plugin.FilterTable(info.Filters))
	information := processArena.bytes(text.EncodeCString(info.Information))

	t := (*C.OUTPUT_PLUGIN_TABLE)(processArena.alloc(int(C.sizeof_OUTPUT_PLUGIN_TABLE)))
	hasConfig := C.int(0)
	if info.HasConfig {
		hasConfig = 1
	}
	C.aviutlgo_fill_table(t, C.LPSTR(name), C.LPSTR(filter), C.LPSTR(information), hasConfig)
	return unsafe.Pointer(t)
}

// tableLayout is what the host sees when it reads a built table.
type tableLayout struct {
	Flag        int
	Name        []byte // without the terminating NUL
	FileFilter  []byte // including every NUL up to the final empty entry
	Information []byte
	HasInit     bool
	HasExit     bool
	HasOutput   bool
	HasConfig   bool
	HasConfigIO bool
}

// readTable copies the contents of the table at p back into Go memory.
func readTable(p unsafe.Pointer) tableLayout {
	t := (*C.OUTPUT_PLUGIN_TABLE)(p)
	return tableLayout{
		Flag:        int(t.flag),
		Name:        cString(unsafe.Pointer(t.name)),
		FileFilter:  cFilterList(unsafe.Pointer(t.filefilter)),
		Information: cString(unsafe.Pointer(t.information)),
		HasInit:     t.func_init != nil,
		HasExit:     t.func_exit != nil,
		HasOutput:   t.func_output != nil,
		HasConfig:   t.func_config != nil,
		HasConfigIO: t.func_config_get != nil && t.func_config_set != nil,
	}
}

func cString(p unsafe.Pointer) []byte {
	if p == nil {
		return nil
	}
	return []byte(C.GoString((*C.char)(p)))
}

// cFilterList reads a list of NUL-terminated strings ending in an empty one.
func cFilterList(p unsafe.Pointer) []byte {
	if p == nil {
		return nil
	}
	var out []byte
	for {
		s := cString(p)
		out = append(out, s...)
		out = append(out, 0)
		if len(s) == 0 {
			return out
		}
		p = unsafe.Add(p, len(s)+1)
	}
}

// filterCount returns the number of filters in a flattened filter list.
func (l tableLayout) filterCount() int {
	return (bytes.Count(l.FileFilter, []byte{0}) - 1) / 2
}
