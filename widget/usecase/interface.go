package usecase

import "github.com/ponyo877/mockterm/widget/domain"

// Repository gives read-only access to the mock file tree.
type Repository interface {
	Root() *domain.Node
	GetNode(path domain.Path) (*domain.Node, error)
	IsFolder(path domain.Path) bool
}

// Terminal is a simulated shell session driven by UI events.
type Terminal interface {
	Submit()
	Edit(text string)
	Exec(line string)
	Toggle(key string) bool

	Observe(fn func(domain.Event))
	Snapshot() Snapshot
	Tree() *domain.Node
	ID() string
}
