// Package state holds the configuration bytes the host stores on the
// plugin's behalf inside its project and profile files.
//
// The host treats the bytes as opaque. It reads them with config_get and
// restores them with config_set; the plugin reads and writes them through
// the typed Get and Set helpers.
package state

import (
	"errors"
	"fmt"
	"sync"
)

// ErrBufferTooSmall is returned by ReadInto when the destination cannot
// hold the whole buffer.
var ErrBufferTooSmall = errors.New("state: destination smaller than configuration")

// Buffer is a mutex-guarded byte slice replaced wholesale on every write.
type Buffer struct {
	mu   sync.Mutex
	data []byte
}

// Len returns the current length in bytes.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// ReadInto copies the whole buffer into dst and returns the number of bytes
// copied. Partial reads are never performed.
func (b *Buffer) ReadInto(dst []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(dst) < len(b.data) {
		return 0, fmt.Errorf("%w: have %d, need %d", ErrBufferTooSmall, len(dst), len(b.data))
	}
	return copy(dst, b.data), nil
}

// Replace stores a copy of src and returns the number of bytes accepted.
func (b *Buffer) Replace(src []byte) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data = append(b.data[:0:0], src...)
	return len(src)
}

// Bytes returns a copy of the contents.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.data...)
}

// view calls fn with the contents under the lock. fn must not retain data.
func (b *Buffer) view(fn func(data []byte) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return fn(b.data)
}

var process Buffer

// Default returns the process-wide configuration buffer.
func Default() *Buffer {
	return &process
}

// Reset empties the process-wide buffer.
func Reset() {
	process.Replace(nil)
}
