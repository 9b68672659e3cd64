package plugin

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The host resolves GetOutputPluginTable by its undecorated name, but
// 32-bit MinGW exports stdcall functions as name@bytes unless the linker
// strips the suffix.
func TestWindows386ExportIsUndecorated(t *testing.T) {
	src, err := os.ReadFile("exports.go")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`(?m)^// #cgo windows,386 LDFLAGS: .*-Wl,--kill-at`), string(src))

	c, err := os.ReadFile("bridge.c")
	require.NoError(t, err)
	assert.Contains(t, string(c), "__declspec(dllexport) OUTPUT_PLUGIN_TABLE *__stdcall GetOutputPluginTable(void)")
}
