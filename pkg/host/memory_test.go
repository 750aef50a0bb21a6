package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jornvdb/menugen/pkg/menu"
)

func TestLoadConfigurationDispatchesMenuCallbacks(t *testing.T) {
	h := NewMemoryHost()

	h.Callbacks().AddScript(EventRegisterMenus, "cb", func(param interface{}) {
		mgr, ok := param.(MenuManager)
		require.True(t, ok, "param should carry the menu manager")
		mgr.MainMenuBar().CreateAction(menu.NewID(), menu.ActionTypeMacro, "Tool`Cat")
	})

	mgr := h.MenuManager()
	mgr.LoadConfiguration(mgr.CurrentConfiguration())

	require.Len(t, h.MainMenuSpec().Entries, 1)
	assert.Equal(t, "Tool`Cat", h.MainMenuSpec().Entries[0].Label)
}

func TestReloadStartsFromEmptyBar(t *testing.T) {
	h := NewMemoryHost()

	h.Callbacks().AddScript(EventRegisterMenus, "cb", func(param interface{}) {
		param.(MenuManager).MainMenuBar().CreateSubMenu(menu.NewID(), "Tools")
	})

	mgr := h.MenuManager()
	mgr.LoadConfiguration(mgr.CurrentConfiguration())
	mgr.LoadConfiguration(mgr.CurrentConfiguration())

	// Two reloads must not stack two submenus.
	assert.Len(t, h.MainMenuSpec().Entries, 1)
}

func TestRemoveScriptsUnbindsByID(t *testing.T) {
	h := NewMemoryHost()
	reg := h.registry

	fired := 0
	h.Callbacks().AddScript(EventRegisterMenus, "a", func(interface{}) { fired++ })
	h.Callbacks().AddScript(EventRegisterMenus, "b", func(interface{}) { fired++ })
	assert.Equal(t, 2, reg.Registered(EventRegisterMenus))

	h.Callbacks().RemoveScripts("a")
	assert.Equal(t, 1, reg.Registered(EventRegisterMenus))

	h.MenuManager().LoadConfiguration("Default")
	assert.Equal(t, 1, fired)

	// Removing an id that was never registered is a no-op.
	h.Callbacks().RemoveScripts("missing")
	assert.Equal(t, 1, reg.Registered(EventRegisterMenus))
}

func TestQuadMenuRecording(t *testing.T) {
	h := NewMemoryHost()

	h.Callbacks().AddScript(EventRegisterQuadMenus, "quad", func(param interface{}) {
		mgr := param.(QuadMenuManager)
		ctx := mgr.ContextByID(ViewportContextID)
		require.NotNil(t, ctx)

		qm := ctx.CreateQuadMenu(menu.NewID(), "Tools Quad")
		qm.SetRightClickModifiers("shiftAndControlPressed")
		sink := qm.CreateMenu(menu.NewID(), "TopRight")
		sink.CreateAction(menu.NewID(), menu.ActionTypeMacro, "Tool`Cat")
	})

	mgr := h.QuadMenuManager()
	mgr.LoadConfiguration(mgr.CurrentConfiguration())

	quads := h.QuadMenus()
	require.Len(t, quads, 1)
	assert.Equal(t, "Tools Quad", quads[0].Label)
	assert.Equal(t, "shiftAndControlPressed", quads[0].Modifier)
	assert.Equal(t, []string{"TopRight"}, quads[0].Quadrants())

	spec := quads[0].Menu("TopRight")
	require.NotNil(t, spec)
	require.Len(t, spec.Entries, 1)
	assert.Equal(t, "Tool`Cat", spec.Entries[0].Label)

	assert.Nil(t, quads[0].Menu("BottomLeft"))
}

func TestContextByIDUnknown(t *testing.T) {
	h := NewMemoryHost()
	assert.Nil(t, h.QuadMenuManager().ContextByID("not-a-context"))
}
