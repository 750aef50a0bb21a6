package menu

// EntryKind distinguishes the two kinds of menu entries.
type EntryKind string

const (
	EntrySubMenu EntryKind = "submenu"
	EntryAction  EntryKind = "action"
)

// Entry is one recorded menu element. Submenu entries carry children; action
// entries carry the action-type tag.
type Entry struct {
	Kind       EntryKind `yaml:"kind" json:"kind"`
	ID         string    `yaml:"id" json:"id"`
	Label      string    `yaml:"label" json:"label"`
	ActionType int       `yaml:"action_type,omitempty" json:"action_type,omitempty"`
	Children   []*Entry  `yaml:"children,omitempty" json:"children,omitempty"`
}

// Spec is the recorded result of one synthesis pass into a SpecSink. It is
// ephemeral: produced per registration call and discarded after use.
type Spec struct {
	Entries []*Entry `yaml:"entries" json:"entries"`
}

// SpecSink records every CreateSubMenu/CreateAction call into a Spec tree.
type SpecSink struct {
	spec    *Spec
	entries *[]*Entry
}

// NewSpecSink returns a sink recording into a fresh Spec.
func NewSpecSink() *SpecSink {
	spec := &Spec{}
	return &SpecSink{spec: spec, entries: &spec.Entries}
}

// Spec returns the accumulated recording.
func (s *SpecSink) Spec() *Spec {
	return s.spec
}

// CreateSubMenu implements Sink.
func (s *SpecSink) CreateSubMenu(id, label string) Sink {
	entry := &Entry{Kind: EntrySubMenu, ID: id, Label: label}
	*s.entries = append(*s.entries, entry)
	return &SpecSink{spec: s.spec, entries: &entry.Children}
}

// CreateAction implements Sink.
func (s *SpecSink) CreateAction(id string, actionType int, label string) {
	*s.entries = append(*s.entries, &Entry{
		Kind:       EntryAction,
		ID:         id,
		Label:      label,
		ActionType: actionType,
	})
}
