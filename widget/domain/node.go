package domain

// Node is an entry of the mock file tree. A folder keeps its children in
// definition order; a file carries opaque content that is never rendered.
type Node struct {
	Name     string
	Type     NodeType
	Content  *string
	Children []*Node
}

func NewFolder(name string, children ...*Node) *Node {
	return &Node{
		Name:     name,
		Type:     NodeTypeFolder,
		Children: children,
	}
}

func NewFile(name string) *Node {
	return &Node{
		Name: name,
		Type: NodeTypeFile,
	}
}

func NewFileWithContent(name, content string) *Node {
	return &Node{
		Name:    name,
		Type:    NodeTypeFile,
		Content: &content,
	}
}

func (n *Node) IsFolder() bool {
	return n != nil && n.Type == NodeTypeFolder
}

// Child returns the direct child called name.
func (n *Node) Child(name string) (*Node, bool) {
	if !n.IsFolder() {
		return nil, false
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Lookup walks p from n. The empty path resolves to n itself.
func (n *Node) Lookup(p Path) (*Node, bool) {
	cur := n
	for _, name := range p {
		next, ok := cur.Child(name)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
