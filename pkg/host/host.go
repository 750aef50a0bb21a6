// Package host defines the narrow capabilities the generator consumes from
// the surrounding application: menu containers, the quad-menu model, and the
// callback registry. Host-specific adapters implement these at the
// integration boundary; MemoryHost implements them in-process.
package host

import "github.com/jornvdb/menugen/pkg/menu"

// Event names a host UI-rebuild event that callbacks can be bound to.
type Event string

const (
	// EventRegisterMenus fires when the host rebuilds its pull-down menus.
	EventRegisterMenus Event = "cuiRegisterMenus"
	// EventRegisterQuadMenus fires when the host rebuilds its quad menus.
	EventRegisterQuadMenus Event = "cuiRegisterQuadMenus"
)

// ViewportContextID identifies the host's 3D viewport context, the only
// context quad menus are registered into.
const ViewportContextID = "ac7c70f8-3f86-4ff5-a510-e4fd6a9c368e"

// Callback receives the host's notification parameter: the MenuManager for
// EventRegisterMenus, the QuadMenuManager for EventRegisterQuadMenus.
type Callback func(param interface{})

// Registry is the host's script-callback registry. Re-registering under an
// id that was removed first is the idempotent replacement pattern.
type Registry interface {
	// RemoveScripts drops every callback registered under id.
	RemoveScripts(id string)
	// AddScript binds cb to event under id.
	AddScript(event Event, id string, cb Callback)
}

// MenuManager is the host's pull-down menu subsystem.
type MenuManager interface {
	// MainMenuBar returns the top-level menu container.
	MainMenuBar() menu.Sink
	CurrentConfiguration() string
	// LoadConfiguration reloads a menu configuration, which makes the host
	// fire EventRegisterMenus for the registered callbacks.
	LoadConfiguration(name string)
}

// QuadMenu is one four-quadrant radial menu.
type QuadMenu interface {
	// SetRightClickModifiers gates the quad menu on a host-internal
	// modifier name, e.g. "shiftAndControlPressed".
	SetRightClickModifiers(hostName string)
	// CreateMenu returns the container for one quadrant, e.g. "TopRight".
	CreateMenu(id, quadrant string) menu.Sink
}

// ViewportContext is a host context quad menus can be created in.
type ViewportContext interface {
	CreateQuadMenu(id, label string) QuadMenu
}

// QuadMenuManager is the host's quad-menu subsystem.
type QuadMenuManager interface {
	// ContextByID resolves a context; nil when the id is unknown.
	ContextByID(id string) ViewportContext
	CurrentConfiguration() string
	// LoadConfiguration reloads a quad-menu configuration, which makes the
	// host fire EventRegisterQuadMenus for the registered callbacks.
	LoadConfiguration(name string)
}

// Host bundles the three capabilities registration needs.
type Host interface {
	Callbacks() Registry
	MenuManager() MenuManager
	QuadMenuManager() QuadMenuManager
}
