package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind categorizes the two kinds of nodes in a directory tree.
type Kind string

const (
	KindDirectory Kind = "directory"
	KindFile      Kind = "file"
)

// Node is a single node in the scanned directory tree. Trees are built once
// and never mutated afterwards; refreshing a tree means a new Build.
type Node struct {
	// Name is the final path segment. For the root node it is the basename
	// of the scanned directory.
	Name string
	// Path is the node's filesystem path as given to (or derived from) Build.
	Path string
	Kind Kind
	// Children holds one node per directory entry, in lexicographic order.
	// Always empty for KindFile nodes.
	Children []*Node
}

// IsDir reports whether the node represents a directory.
func (n *Node) IsDir() bool {
	return n.Kind == KindDirectory
}

// Build scans path into a Node tree with exactly one directory listing per
// directory node. A path that is not a directory, including one that does
// not exist, becomes a childless file node rather than an error.
func Build(path string) (*Node, error) {
	node := &Node{
		Name: baseName(path),
		Path: path,
		Kind: KindFile,
	}

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return node, nil
	}
	node.Kind = KindDirectory

	// os.ReadDir returns entries sorted by name, which is the ordering the
	// menus rely on.
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("list directory %s: %w", path, err)
	}

	node.Children = make([]*Node, 0, len(entries))
	for _, entry := range entries {
		child, err := Build(filepath.Join(path, entry.Name()))
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}

	return node, nil
}

// baseName is filepath.Base tolerant of trailing separators in caller-supplied
// root paths, e.g. "C:\Tools\" or "/opt/tools/".
func baseName(path string) string {
	trimmed := strings.TrimRight(path, `\/`)
	if trimmed == "" {
		trimmed = path
	}
	return filepath.Base(trimmed)
}
