package plugin

// #include <stdlib.h>
import "C"
import (
	"sync"
	"unsafe"
)

// arena hands out C memory that is never freed. The host keeps the plugin
// table and its strings for as long as the DLL is loaded.
type arena struct {
	mu     sync.Mutex
	blocks int
	size   int
}

var processArena arena

// bytes copies b into C memory.
func (a *arena) bytes(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return a.alloc(1)
	}
	p := C.CBytes(b)
	if p == nil {
		panic("plugin: out of memory")
	}
	a.account(len(b))
	return p
}

// alloc returns n zeroed bytes of C memory.
func (a *arena) alloc(n int) unsafe.Pointer {
	p := C.calloc(1, C.size_t(n))
	if p == nil {
		panic("plugin: out of memory")
	}
	a.account(n)
	return p
}

func (a *arena) account(n int) {
	a.mu.Lock()
	a.blocks++
	a.size += n
	a.mu.Unlock()
}

// stats returns the number of allocations and their total size.
func (a *arena) stats() (blocks, size int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.blocks, a.size
}
