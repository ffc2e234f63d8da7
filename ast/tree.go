package ast

import "strings"

const (
	teeBranch    = "├── "
	cornerBranch = "└── "
	pipeIndent   = "│   "
	blankIndent  = "    "
)

// Tree renders node as a box-drawing tree, one node per line.
// The root is drawn with the corner branch.
func Tree(node Node) string {
	return TreeFrom(node, "", false)
}

// TreeFrom renders node below prefix. Left children use the tee branch and
// right children the corner branch.
func TreeFrom(node Node, prefix string, isLeft bool) string {
	var b strings.Builder
	writeTree(&b, node, prefix, isLeft)

	return b.String()
}

func writeTree(b *strings.Builder, node Node, prefix string, isLeft bool) {
	b.WriteString(prefix)
	if isLeft {
		b.WriteString(teeBranch)
	} else {
		b.WriteString(cornerBranch)
	}

	switch n := node.(type) {
	case *Literal:
		b.WriteString(n.Value.String())
	case *Binary:
		b.WriteString(n.Op.Symbol())

		childPrefix := prefix + blankIndent
		if isLeft {
			childPrefix = prefix + pipeIndent
		}
		b.WriteString("\n")
		writeTree(b, n.Left, childPrefix, true)
		b.WriteString("\n")
		writeTree(b, n.Right, childPrefix, false)
	}
}
