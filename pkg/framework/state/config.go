package state

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/justyntemme/aviutlgo/pkg/framework/debug"
)

// ErrTrailingData is returned by Decode when the buffer holds more than one
// value.
var ErrTrailingData = errors.New("state: trailing bytes after configuration")

// Decode unmarshals b. ok is false when b is empty, meaning nothing was
// saved yet and the caller should use its defaults. Fields unknown to T and
// bytes left over after the value are errors.
func Decode[T any](b *Buffer) (v T, ok bool, err error) {
	err = b.view(func(data []byte) error {
		if len(data) == 0 {
			return nil
		}
		ok = true
		r := bytes.NewReader(data)
		dec := msgpack.NewDecoder(r)
		dec.DisallowUnknownFields(true)
		if err := dec.Decode(&v); err != nil {
			return err
		}
		if r.Len() != 0 {
			return fmt.Errorf("%w: %d of %d", ErrTrailingData, r.Len(), len(data))
		}
		return nil
	})
	if err != nil {
		var zero T
		return zero, false, fmt.Errorf("state: decode configuration: %w", err)
	}
	return v, ok, nil
}

// Encode marshals v and replaces the contents of b.
func Encode[T any](b *Buffer, v T) error {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("state: encode configuration: %w", err)
	}
	b.Replace(data)
	return nil
}

// Get decodes the process-wide configuration. The buffer only ever holds
// bytes written by Set in this same plugin, so a decode failure is fatal.
func Get[T any]() (T, bool) {
	v, ok, err := Decode[T](Default())
	if err != nil {
		debug.Fatal("corrupt configuration", "error", err, "size", Default().Len())
	}
	return v, ok
}

// GetOrDefault is Get with a fallback for the empty buffer.
func GetOrDefault[T any](def T) T {
	if v, ok := Get[T](); ok {
		return v
	}
	return def
}

// Set encodes v into the process-wide configuration.
func Set[T any](v T) {
	if err := Encode(Default(), v); err != nil {
		debug.Fatal("cannot encode configuration", "error", err)
	}
}
