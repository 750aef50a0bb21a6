package host

import "github.com/jornvdb/menugen/pkg/menu"

// MemoryHost is a complete in-process host: callbacks registered with its
// registry fire when a manager's configuration is (re)loaded, and everything
// the callbacks create is recorded as menu.Spec trees. It backs the CLI's
// preview/export/register commands and the tests.
type MemoryHost struct {
	registry *MemoryRegistry
	menus    *MemoryMenuManager
	quads    *MemoryQuadManager
}

// NewMemoryHost returns a host with empty menus and no registered callbacks.
func NewMemoryHost() *MemoryHost {
	registry := &MemoryRegistry{}
	return &MemoryHost{
		registry: registry,
		menus:    &MemoryMenuManager{registry: registry, bar: menu.NewSpecSink()},
		quads:    &MemoryQuadManager{registry: registry},
	}
}

// Callbacks implements Host.
func (h *MemoryHost) Callbacks() Registry {
	return h.registry
}

// MenuManager implements Host.
func (h *MemoryHost) MenuManager() MenuManager {
	return h.menus
}

// QuadMenuManager implements Host.
func (h *MemoryHost) QuadMenuManager() QuadMenuManager {
	return h.quads
}

// MainMenuSpec returns what the last menu rebuild put on the main menu bar.
func (h *MemoryHost) MainMenuSpec() *menu.Spec {
	return h.menus.bar.Spec()
}

// QuadMenus returns the quad menus created by the last quad-menu rebuild.
func (h *MemoryHost) QuadMenus() []*MemoryQuadMenu {
	return h.quads.quadMenus
}

type registration struct {
	event Event
	id    string
	cb    Callback
}

// MemoryRegistry is an ordered in-process callback registry.
type MemoryRegistry struct {
	scripts []registration
}

// RemoveScripts implements Registry.
func (r *MemoryRegistry) RemoveScripts(id string) {
	kept := r.scripts[:0]
	for _, s := range r.scripts {
		if s.id != id {
			kept = append(kept, s)
		}
	}
	r.scripts = kept
}

// AddScript implements Registry.
func (r *MemoryRegistry) AddScript(event Event, id string, cb Callback) {
	r.scripts = append(r.scripts, registration{event: event, id: id, cb: cb})
}

// Registered reports how many callbacks are bound to event.
func (r *MemoryRegistry) Registered(event Event) int {
	count := 0
	for _, s := range r.scripts {
		if s.event == event {
			count++
		}
	}
	return count
}

func (r *MemoryRegistry) dispatch(event Event, param interface{}) {
	// Copy first so callbacks re-registering during dispatch don't shift the
	// iteration under us.
	scripts := make([]registration, len(r.scripts))
	copy(scripts, r.scripts)
	for _, s := range scripts {
		if s.event == event {
			s.cb(param)
		}
	}
}

// MemoryMenuManager records the main menu bar.
type MemoryMenuManager struct {
	registry *MemoryRegistry
	bar      *menu.SpecSink
}

// MainMenuBar implements MenuManager.
func (m *MemoryMenuManager) MainMenuBar() menu.Sink {
	return m.bar
}

// CurrentConfiguration implements MenuManager.
func (m *MemoryMenuManager) CurrentConfiguration() string {
	return "Default"
}

// LoadConfiguration implements MenuManager. Like the real host, reloading
// starts from an empty menu bar and replays the registered callbacks.
func (m *MemoryMenuManager) LoadConfiguration(string) {
	m.bar = menu.NewSpecSink()
	m.registry.dispatch(EventRegisterMenus, MenuManager(m))
}

// MemoryQuadManager records quad menus created in the viewport context.
type MemoryQuadManager struct {
	registry  *MemoryRegistry
	quadMenus []*MemoryQuadMenu
}

// ContextByID implements QuadMenuManager. Only the viewport context exists.
func (m *MemoryQuadManager) ContextByID(id string) ViewportContext {
	if id != ViewportContextID {
		return nil
	}
	return &memoryViewportContext{manager: m}
}

// CurrentConfiguration implements QuadMenuManager.
func (m *MemoryQuadManager) CurrentConfiguration() string {
	return "Default"
}

// LoadConfiguration implements QuadMenuManager.
func (m *MemoryQuadManager) LoadConfiguration(string) {
	m.quadMenus = nil
	m.registry.dispatch(EventRegisterQuadMenus, QuadMenuManager(m))
}

type memoryViewportContext struct {
	manager *MemoryQuadManager
}

func (c *memoryViewportContext) CreateQuadMenu(id, label string) QuadMenu {
	qm := &MemoryQuadMenu{ID: id, Label: label}
	c.manager.quadMenus = append(c.manager.quadMenus, qm)
	return qm
}

// MemoryQuadMenu records one quad menu: its gating and per-quadrant menus.
type MemoryQuadMenu struct {
	ID       string
	Label    string
	Modifier string

	quadrants []string
	menus     map[string]*menu.SpecSink
}

// SetRightClickModifiers implements QuadMenu.
func (q *MemoryQuadMenu) SetRightClickModifiers(hostName string) {
	q.Modifier = hostName
}

// CreateMenu implements QuadMenu.
func (q *MemoryQuadMenu) CreateMenu(id, quadrant string) menu.Sink {
	if q.menus == nil {
		q.menus = make(map[string]*menu.SpecSink)
	}
	sink := menu.NewSpecSink()
	q.menus[quadrant] = sink
	q.quadrants = append(q.quadrants, quadrant)
	return sink
}

// Quadrants lists the quadrants menus were created in, in creation order.
func (q *MemoryQuadMenu) Quadrants() []string {
	return q.quadrants
}

// Menu returns the recorded menu for a quadrant, or nil.
func (q *MemoryQuadMenu) Menu(quadrant string) *menu.Spec {
	sink, ok := q.menus[quadrant]
	if !ok {
		return nil
	}
	return sink.Spec()
}
