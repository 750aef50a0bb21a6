// Package menu maps a scanned directory tree onto nested menu structures.
package menu

import "github.com/google/uuid"

// ActionTypeMacro is the host's action-type tag for macro-backed menu actions.
const ActionTypeMacro = 647394

// Sink is the capability a menu container exposes: it can grow nested
// submenus and leaf actions. The host's menu subsystem implements it at the
// integration boundary; SpecSink implements it in-process.
type Sink interface {
	// CreateSubMenu adds a nested submenu and returns its container.
	CreateSubMenu(id, label string) Sink
	// CreateAction adds a leaf action.
	CreateAction(id string, actionType int, label string)
}

// NewID returns a fresh unique identifier for a menu element. Identifiers
// are never reused across synthesis passes.
func NewID() string {
	return uuid.NewString()
}
