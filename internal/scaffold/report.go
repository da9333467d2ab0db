package scaffold

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true)
	summaryStatStyle  = lipgloss.NewStyle().Faint(true)
	summaryTreeStyle  = lipgloss.NewStyle().PaddingLeft(3)
)

// Summary renders a human-readable generation report: header, file tree and
// next steps. Machine-readable output goes through pkg/printer instead.
func (r *GenerationResult) Summary() string {
	var sb strings.Builder

	sb.WriteString(summaryTitleStyle.Render(fmt.Sprintf("✓ Generated module in %s", r.ModulePath)))
	sb.WriteString("\n")
	sb.WriteString(summaryStatStyle.Render(fmt.Sprintf("%d files, %d bytes, %s", r.FileCount, r.TotalBytes, r.Elapsed.Round(fileTreeRounding))))
	sb.WriteString("\n\n")

	paths := make([]string, 0, len(r.Files))
	for _, f := range r.Files {
		paths = append(paths, f.RelPath)
	}
	sb.WriteString(summaryTreeStyle.Render(renderTree(paths)))
	sb.WriteString("\n\n")

	next := "Next: open AI_COMPLETION.md inside the module and resolve every AI_TODO marker, then run the generated tests."
	sb.WriteString(wordwrap.String(next, 72))
	sb.WriteString("\n")

	return sb.String()
}

const fileTreeRounding = 1e6 // round elapsed to milliseconds for display

// renderTree renders relative slash paths as an indented file tree.
func renderTree(paths []string) string {
	root := newTreeNode()
	for _, p := range paths {
		root.insert(strings.Split(p, "/"))
	}
	var sb strings.Builder
	root.render(&sb, "")
	return strings.TrimRight(sb.String(), "\n")
}

type treeNode struct {
	children map[string]*treeNode
}

func newTreeNode() *treeNode {
	return &treeNode{children: make(map[string]*treeNode)}
}

func (n *treeNode) insert(parts []string) {
	if len(parts) == 0 {
		return
	}
	child, ok := n.children[parts[0]]
	if !ok {
		child = newTreeNode()
		n.children[parts[0]] = child
	}
	child.insert(parts[1:])
}

func (n *treeNode) render(sb *strings.Builder, prefix string) {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	// Directories first, then files, each alphabetically.
	sort.Slice(names, func(i, j int) bool {
		di := len(n.children[names[i]].children) > 0
		dj := len(n.children[names[j]].children) > 0
		if di != dj {
			return di
		}
		return names[i] < names[j]
	})

	for i, name := range names {
		connector := "├── "
		childPrefix := prefix + "│   "
		if i == len(names)-1 {
			connector = "└── "
			childPrefix = prefix + "    "
		}
		label := name
		if len(n.children[name].children) > 0 {
			label += "/"
		}
		sb.WriteString(prefix + connector + label + "\n")
		n.children[name].render(sb, childPrefix)
	}
}
