package repository

import (
	"errors"
	"fmt"

	"github.com/ponyo877/mockterm/widget/domain"
	"github.com/ponyo877/mockterm/widget/usecase"
)

var ErrNotFound = errors.New("not found")

// instructionPlaceholder stands in for an opaque text blob. The widget only
// ever reads names and node kinds, never file content.
const instructionPlaceholder = "opaque file content; not rendered"

// mockTree is built once and never mutated.
var mockTree = domain.NewFolder("",
	domain.NewFolder("system",
		domain.NewFolder("logs",
			domain.NewFile("access.log"),
			domain.NewFile("error.log"),
			domain.NewFile("system.log"),
		),
		domain.NewFolder("config",
			domain.NewFile("settings.conf"),
			domain.NewFile("users.dat"),
		),
		domain.NewFileWithContent("instruction.txt", instructionPlaceholder),
	),
	domain.NewFolder("documents",
		domain.NewFile("manifest.txt"),
		domain.NewFile("readme.md"),
	),
	domain.NewFolder("hidden",
		domain.NewFile(".secret"),
		domain.NewFile(".keys"),
	),
)

type Repository struct {
	root *domain.Node
}

// NewRepository serves the built-in mock tree.
func NewRepository() usecase.Repository {
	return &Repository{root: mockTree}
}

var ErrNotFolder = errors.New("root is not a folder")

// NewRepositoryWithRoot serves an arbitrary tree.
func NewRepositoryWithRoot(root *domain.Node) (usecase.Repository, error) {
	if !root.IsFolder() {
		return nil, ErrNotFolder
	}
	return &Repository{root: root}, nil
}

func (r *Repository) Root() *domain.Node {
	return r.root
}

func (r *Repository) GetNode(path domain.Path) (*domain.Node, error) {
	node, ok := r.root.Lookup(path)
	if !ok {
		return nil, fmt.Errorf("error looking up %q: %w", path.String(), ErrNotFound)
	}
	return node, nil
}

func (r *Repository) IsFolder(path domain.Path) bool {
	if len(path) == 0 {
		return false
	}
	node, err := r.GetNode(path)
	if err != nil {
		return false
	}
	return node.IsFolder()
}
