package tree

import "strings"

// Render draws the tree in the style of the Unix tree command, one line per
// node. The root itself is not drawn; its children start at column zero.
// Children appear in stored order.
func Render(root *Node) string {
	if root == nil {
		return ""
	}

	var sb strings.Builder
	for i, child := range root.Children {
		renderBranch(&sb, child, "", i == len(root.Children)-1)
	}
	return sb.String()
}

func renderBranch(sb *strings.Builder, node *Node, prefix string, isLast bool) {
	connector := "├── "
	if isLast {
		connector = "└── "
	}
	sb.WriteString(prefix + connector + node.Name + "\n")

	childPrefix := prefix + "│   "
	if isLast {
		childPrefix = prefix + "    "
	}
	for i, child := range node.Children {
		renderBranch(sb, child, childPrefix, i == len(node.Children)-1)
	}
}
