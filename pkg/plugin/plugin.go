// Package plugin connects a Go output plugin to the host's C ABI.
//
// A plugin registers itself once, from an init function of its main
// package, and the package builds the OUTPUT_PLUGIN_TABLE the host fetches
// through GetOutputPluginTable. Every host call is routed to the registered
// Plugin with typed arguments.
package plugin

import (
	"github.com/justyntemme/aviutlgo/pkg/framework/output"
	"github.com/justyntemme/aviutlgo/pkg/framework/plugin"
)

// Plugin is the main interface that users implement
type Plugin interface {
	// GetInfo returns plugin metadata
	GetInfo() plugin.Info

	// Output writes one job. info is valid only until Output returns.
	Output(info *output.Info) error
}

// Initializer is implemented by plugins that need setup when the host
// loads them.
type Initializer interface {
	Init() error
}

// Finalizer is implemented by plugins that need cleanup when the host
// unloads them.
type Finalizer interface {
	Exit() error
}

// Configurer is implemented by plugins with a settings dialog. hwnd is the
// host's parent window and instance the plugin module handle.
type Configurer interface {
	Config(hwnd, instance uintptr) error
}
