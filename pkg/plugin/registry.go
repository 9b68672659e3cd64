package plugin

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/hashicorp/go-hclog"

	"github.com/justyntemme/aviutlgo/pkg/framework/debug"
	"github.com/justyntemme/aviutlgo/pkg/framework/plugin"
)

// record is the registered plugin together with the table built for it.
type record struct {
	plugin Plugin
	info   plugin.Info
	table  unsafe.Pointer
}

var (
	registryMu sync.Mutex
	registered *record
)

func logger() hclog.Logger {
	return debug.Named("bridge")
}

// Register installs p as the process's output plugin and returns the
// OUTPUT_PLUGIN_TABLE the host will receive. Call it once, from an init
// function of the plugin's main package. A second call, or a plugin whose
// info the host could not use, is fatal.
func Register(p Plugin) unsafe.Pointer {
	registryMu.Lock()
	defer registryMu.Unlock()

	if registered != nil {
		debug.Fatal("output plugin already registered", "name", registered.info.Name)
	}
	info := p.GetInfo()
	if err := validate(p, info); err != nil {
		debug.Fatal("invalid output plugin info", "error", err)
	}

	table := buildTable(info)
	registered = &record{plugin: p, info: info, table: table}

	layout := readTable(table)
	logger().Debug("output plugin registered",
		"name", info.Name,
		"filters", layout.filterCount(),
		"config", layout.HasConfig)
	return table
}

func validate(p Plugin, info plugin.Info) error {
	if err := info.Validate(); err != nil {
		return err
	}
	if _, ok := p.(Configurer); info.HasConfig && !ok {
		return fmt.Errorf("%w: HasConfig set but %T has no Config method", plugin.ErrInvalidInfo, p)
	}
	return nil
}

// current returns the registered plugin, if any.
func current() (*record, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	return registered, registered != nil
}

// Table returns the registered table, or nil before Register.
func Table() unsafe.Pointer {
	if rec, ok := current(); ok {
		return rec.table
	}
	return nil
}

// Reset forgets the registered plugin. The table memory is not reclaimed.
// It exists for tests.
func Reset() {
	registryMu.Lock()
	registered = nil
	registryMu.Unlock()
}
