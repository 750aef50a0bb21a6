package menu

import (
	"path/filepath"
	"strings"

	"github.com/jornvdb/menugen/pkg/macro"
	"github.com/jornvdb/menugen/pkg/tree"
)

const (
	// DescriptorExt is the macro-descriptor extension, matched case-insensitively.
	DescriptorExt = ".mcr"
	// LabelSeparator joins macro name and category in an action label.
	LabelSeparator = "`"
)

// Synthesizer walks a cached directory tree and emits submenus and actions
// into a Sink. One synthesizer serves any number of synthesis passes over
// the same root.
type Synthesizer struct {
	// RootPath identifies the tree's root node; the root contributes no
	// submenu level of its own.
	RootPath string
	// Read extracts (name, category) from a descriptor file.
	Read func(path string) (name, category string)
}

// NewSynthesizer returns a synthesizer for trees rooted at rootPath, reading
// descriptors with macro.Read.
func NewSynthesizer(rootPath string) *Synthesizer {
	return &Synthesizer{
		RootPath: rootPath,
		Read: func(path string) (string, string) {
			return macro.Read(path)
		},
	}
}

// Synthesize maps node onto target. The root node populates target
// directly; any other directory becomes a fresh submenu. Within each menu,
// all actions are created before any nested submenu so actions always render
// above submenus. Directories without descriptors still become (empty)
// submenus.
func (s *Synthesizer) Synthesize(node *tree.Node, target Sink) {
	var current Sink
	switch {
	case filepath.Clean(node.Path) == filepath.Clean(s.RootPath):
		current = target
	case node.IsDir():
		current = target.CreateSubMenu(NewID(), node.Name)
	default:
		return
	}

	for _, child := range node.Children {
		if child.Kind != tree.KindFile || !strings.HasSuffix(strings.ToLower(child.Path), DescriptorExt) {
			continue
		}
		name, category := s.Read(child.Path)
		if name != "" && category != "" {
			current.CreateAction(NewID(), ActionTypeMacro, name+LabelSeparator+category)
		}
	}

	for _, child := range node.Children {
		if child.IsDir() {
			s.Synthesize(child, current)
		}
	}
}
