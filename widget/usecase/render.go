package usecase

import (
	"strings"

	"github.com/ponyo877/mockterm/widget/domain"
)

const (
	chevronCollapsed = "▸"
	chevronExpanded  = "▾"
	chevronNone      = " "
	iconFolder       = "📁"
	iconFile         = "📄"
	indentUnit       = "  "
)

// TreeRow is one visible line of the tree view.
type TreeRow struct {
	Key      string
	Name     string
	Depth    int
	Type     domain.NodeType
	Expanded bool
}

func (r TreeRow) IsFolder() bool {
	return r.Type == domain.NodeTypeFolder
}

func (r TreeRow) Chevron() string {
	switch {
	case !r.IsFolder():
		return chevronNone
	case r.Expanded:
		return chevronExpanded
	default:
		return chevronCollapsed
	}
}

func (r TreeRow) Icon() string {
	if r.IsFolder() {
		return iconFolder
	}
	return iconFile
}

func (r TreeRow) Text() string {
	return strings.Repeat(indentUnit, r.Depth) + r.Chevron() + " " + r.Icon() + " " + r.Name
}

// RenderTree lists the visible rows of root depth first. Children of a
// folder appear only while its key is in expanded.
func RenderTree(root *domain.Node, expanded ExpandedSet) []TreeRow {
	var rows []TreeRow
	renderTree(root, nil, expanded, &rows)
	return rows
}

func renderTree(node *domain.Node, prefix domain.Path, expanded ExpandedSet, rows *[]TreeRow) {
	if !node.IsFolder() {
		return
	}
	for _, child := range node.Children {
		path := prefix.Join(child.Name)
		key := path.String()
		row := TreeRow{
			Key:   key,
			Name:  child.Name,
			Depth: path.Depth(),
			Type:  child.Type,
		}
		if child.IsFolder() {
			row.Expanded = expanded.Has(key)
		}
		*rows = append(*rows, row)
		if row.Expanded {
			renderTree(child, path, expanded, rows)
		}
	}
}

// TranscriptLine is one rendered line of the session transcript. Output
// lines have an empty Prompt.
type TranscriptLine struct {
	Prompt string
	Text   string
}

func (l TranscriptLine) IsOutput() bool {
	return l.Prompt == ""
}

func (l TranscriptLine) String() string {
	return l.Prompt + l.Text
}

// RenderTranscript renders the history followed by the live prompt line.
func RenderTranscript(snap Snapshot) []TranscriptLine {
	lines := make([]TranscriptLine, 0, len(snap.History)+1)
	for _, rec := range snap.History {
		lines = append(lines, TranscriptLine{Prompt: snap.Config.Prompt(rec.Path), Text: rec.Input})
		if rec.HasOutput() {
			lines = append(lines, TranscriptLine{Text: rec.Output})
		}
	}
	return append(lines, TranscriptLine{Prompt: snap.Config.Prompt(snap.CurrentPath), Text: snap.PendingInput})
}

// RenderPlain renders the whole widget as plain text: transcript, live
// line, and the tree when visible.
func RenderPlain(snap Snapshot, root *domain.Node) string {
	var b strings.Builder
	for _, line := range RenderTranscript(snap) {
		b.WriteString(line.String())
		b.WriteByte('\n')
	}
	if snap.TreeVisible {
		for _, row := range RenderTree(root, snap.Expanded) {
			b.WriteString(row.Text())
			b.WriteByte('\n')
		}
	}
	return b.String()
}
