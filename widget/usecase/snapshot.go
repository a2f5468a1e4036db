package usecase

import (
	"sort"

	"github.com/ponyo877/mockterm/widget/domain"
)

// ExpandedSet holds the keys of expanded folders.
type ExpandedSet map[string]struct{}

func NewExpandedSet(keys ...string) ExpandedSet {
	set := make(ExpandedSet, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

func (e ExpandedSet) Has(key string) bool {
	_, ok := e[key]
	return ok
}

// Toggle flips membership of key and returns the new state.
func (e ExpandedSet) Toggle(key string) bool {
	if e.Has(key) {
		delete(e, key)
		return false
	}
	e[key] = struct{}{}
	return true
}

func (e ExpandedSet) Clone() ExpandedSet {
	c := make(ExpandedSet, len(e))
	for k := range e {
		c[k] = struct{}{}
	}
	return c
}

func (e ExpandedSet) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot is a copy of session state taken between events.
type Snapshot struct {
	ID           string
	Config       domain.PromptConfig
	CurrentPath  string
	History      []domain.CommandRecord
	PendingInput string
	TreeVisible  bool
	Expanded     ExpandedSet
}
