// Package plugin describes an output plugin to the host: its display name,
// the file types it writes, and whether it has a settings dialog.
package plugin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/justyntemme/aviutlgo/pkg/framework/text"
)

// ErrInvalidInfo is returned by Validate.
var ErrInvalidInfo = errors.New("plugin: invalid info")

// FileFilter is one entry of the host's save dialog filter list.
type FileFilter struct {
	Label   string // Human readable name, e.g. "WebP images"
	Pattern string // Glob pattern(s), e.g. "*.webp" or "*.jpg;*.jpeg"
}

// Info contains plugin metadata.
type Info struct {
	Name        string       // Name shown in the host's output plugin list
	Filters     []FileFilter // Save dialog filters
	Information string       // Free-form text shown in the plugin information dialog
	HasConfig   bool         // Whether the host should offer the settings button
}

// Validate checks that every string can be passed to the host as a C string.
func (i Info) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidInfo)
	}
	fields := []string{i.Name, i.Information}
	for n, f := range i.Filters {
		if f.Pattern == "" {
			return fmt.Errorf("%w: filter %d has no pattern", ErrInvalidInfo, n)
		}
		fields = append(fields, f.Label, f.Pattern)
	}
	for _, s := range fields {
		if strings.IndexByte(s, 0) >= 0 {
			return fmt.Errorf("%w: %q contains NUL", ErrInvalidInfo, s)
		}
	}
	return nil
}

// FilterTable flattens filters into the host's double-NUL-terminated list:
// for each filter "Label (Pattern)\0Pattern\0", then a final "\0". Strings
// are in the host's native encoding.
func FilterTable(filters []FileFilter) []byte {
	var buf []byte
	for _, f := range filters {
		buf = append(buf, text.EncodeCString(fmt.Sprintf("%s (%s)", f.Label, f.Pattern))...)
		buf = append(buf, text.EncodeCString(f.Pattern)...)
	}
	return append(buf, 0)
}
