package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeLookup(t *testing.T) {
	root := NewFolder("",
		NewFolder("system",
			NewFolder("logs", NewFile("error.log")),
		),
		NewFile(".keys"),
	)

	node, ok := root.Lookup(NewPath("system/logs"))
	require.True(t, ok)
	assert.True(t, node.IsFolder())

	node, ok = root.Lookup(NewPath("system/logs/error.log"))
	require.True(t, ok)
	assert.Equal(t, NodeTypeFile, node.Type)
	assert.Nil(t, node.Content)

	_, ok = root.Lookup(NewPath("system/logs/error.log/deeper"))
	assert.False(t, ok)

	_, ok = root.Lookup(NewPath("missing"))
	assert.False(t, ok)

	self, ok := root.Lookup(Path{})
	require.True(t, ok)
	assert.Same(t, root, self)

	keys, ok := root.Child(".keys")
	require.True(t, ok)
	assert.False(t, keys.IsFolder())
}

func TestEventChangesHistory(t *testing.T) {
	assert.True(t, NewSubmittedEvent("s", NewCommandRecord("ls", "", "~")).ChangesHistory())
	assert.True(t, NewClearedEvent("s").ChangesHistory())
	assert.False(t, NewEditedEvent("s", "l").ChangesHistory())
	assert.False(t, NewToggledEvent("s", "system", true).ChangesHistory())
	assert.Equal(t, "toggled: system expanded", NewToggledEvent("s", "system", true).String())
}
