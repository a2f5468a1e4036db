package domain

type NodeType int

const (
	NodeTypeUnknown NodeType = iota
	NodeTypeFile
	NodeTypeFolder
)

func (t NodeType) String() string {
	switch t {
	case NodeTypeFile:
		return "file"
	case NodeTypeFolder:
		return "folder"
	default:
		return "unknown"
	}
}
