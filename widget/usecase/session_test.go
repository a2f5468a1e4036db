package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponyo877/mockterm/widget/domain"
	"github.com/ponyo877/mockterm/widget/repository"
	"github.com/ponyo877/mockterm/widget/usecase"
)

func newSession(t *testing.T) *usecase.Session {
	t.Helper()
	return usecase.NewSession(repository.NewRepository(), domain.DefaultPromptConfig(), usecase.WithID("test"))
}

func run(s *usecase.Session, lines ...string) {
	for _, line := range lines {
		s.Edit(line)
		s.Submit()
	}
}

func TestSessionInitialState(t *testing.T) {
	s := newSession(t)
	snap := s.Snapshot()
	assert.Equal(t, "test", snap.ID)
	assert.Equal(t, "~", snap.CurrentPath)
	assert.Empty(t, snap.History)
	assert.Empty(t, snap.PendingInput)
	assert.False(t, snap.TreeVisible)
	assert.Empty(t, snap.Expanded)
}

func TestSessionGeneratesID(t *testing.T) {
	a := usecase.NewSession(repository.NewRepository(), domain.DefaultPromptConfig())
	b := usecase.NewSession(repository.NewRepository(), domain.DefaultPromptConfig())
	assert.Len(t, a.ID(), 26)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		wantPath    string
		wantTree    bool
		wantHistory int
	}{
		{name: "ls shows tree", lines: []string{"ls"}, wantPath: "~", wantTree: true, wantHistory: 1},
		{name: "ls is case insensitive and trimmed", lines: []string{"  LS  "}, wantPath: "~", wantTree: true, wantHistory: 1},
		{name: "ls with argument is unknown", lines: []string{"ls -la"}, wantPath: "~", wantHistory: 1},
		{name: "cd from home replaces path", lines: []string{"cd system"}, wantPath: "system", wantHistory: 1},
		{name: "cd lowercases argument", lines: []string{"CD System"}, wantPath: "system", wantHistory: 1},
		{name: "cd uses first token only", lines: []string{"cd logs extra"}, wantPath: "logs", wantHistory: 1},
		{name: "cd skips repeated spaces", lines: []string{"cd    logs"}, wantPath: "logs", wantHistory: 1},
		{name: "cd does not validate", lines: []string{"cd nowhere", "cd deeper"}, wantPath: "nowhere/deeper", wantHistory: 2},
		{name: "cd without argument is unknown", lines: []string{"cd"}, wantPath: "~", wantHistory: 1},
		{name: "cd up at home clamps", lines: []string{"cd .."}, wantPath: "~", wantHistory: 1},
		{name: "cd up pops one segment", lines: []string{"cd a", "cd b", "cd .."}, wantPath: "a", wantHistory: 3},
		{name: "cd up to home", lines: []string{"cd a", "cd .."}, wantPath: "~", wantHistory: 2},
		{name: "unknown command", lines: []string{"rm -rf /"}, wantPath: "~", wantHistory: 1},
		{name: "empty input is recorded", lines: []string{""}, wantPath: "~", wantHistory: 1},
		{name: "clear erases", lines: []string{"ls", "cd a", "clear"}, wantPath: "a", wantHistory: 0},
		{name: "history after clear", lines: []string{"ls", "clear", "pwd", "whoami"}, wantPath: "~", wantHistory: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t)
			run(s, tt.lines...)
			snap := s.Snapshot()
			assert.Equal(t, tt.wantPath, snap.CurrentPath)
			assert.Equal(t, tt.wantTree, snap.TreeVisible)
			assert.Len(t, snap.History, tt.wantHistory)
			assert.Empty(t, snap.PendingInput)
			for _, rec := range snap.History {
				assert.Empty(t, rec.Output)
			}
		})
	}
}

func TestSubmitRecordsOriginalInput(t *testing.T) {
	s := newSession(t)
	run(s, "  CD  Docs  ")
	snap := s.Snapshot()
	require.Len(t, snap.History, 1)
	assert.Equal(t, "  CD  Docs  ", snap.History[0].Input)
	assert.Equal(t, "~", snap.History[0].Path)
	assert.Equal(t, "docs", snap.CurrentPath)
}

func TestNavigationScenario(t *testing.T) {
	s := newSession(t)
	run(s, "cd system", "cd logs", "ls")

	snap := s.Snapshot()
	assert.Equal(t, "system/logs", snap.CurrentPath)
	assert.True(t, snap.TreeVisible)
	require.Len(t, snap.History, 3)
	assert.Equal(t, "~", snap.History[0].Path)
	assert.Equal(t, "system", snap.History[1].Path)
	assert.Equal(t, "system/logs", snap.History[2].Path)
}

func TestCdRoundTrip(t *testing.T) {
	for _, start := range [][]string{nil, {"cd system"}, {"cd system", "cd logs"}} {
		s := newSession(t)
		run(s, start...)
		before := s.Snapshot().CurrentPath
		run(s, "cd foo", "cd ..")
		assert.Equal(t, before, s.Snapshot().CurrentPath)
	}
}

func TestLsKeepsPath(t *testing.T) {
	s := newSession(t)
	run(s, "cd system")
	before := s.Snapshot()
	run(s, "ls")
	after := s.Snapshot()
	assert.Equal(t, before.CurrentPath, after.CurrentPath)
	assert.Len(t, after.History, len(before.History)+1)
	assert.True(t, after.TreeVisible)
}

func TestClearResetsFlags(t *testing.T) {
	s := newSession(t)
	run(s, "clear")
	snap := s.Snapshot()
	assert.Empty(t, snap.History)
	assert.False(t, snap.TreeVisible)
	assert.Empty(t, snap.PendingInput)
	assert.Equal(t, "~", snap.CurrentPath)

	require.True(t, s.Toggle("system"))
	run(s, "ls", "clear")
	snap = s.Snapshot()
	assert.False(t, snap.TreeVisible)
	assert.True(t, snap.Expanded.Has("system"), "clear leaves expanded folders alone")
}

func TestEditReplacesPending(t *testing.T) {
	s := newSession(t)
	s.Edit("l")
	s.Edit("ls")
	assert.Equal(t, "ls", s.Snapshot().PendingInput)
	s.Submit()
	assert.Empty(t, s.Snapshot().PendingInput)
}

func TestToggle(t *testing.T) {
	s := newSession(t)

	assert.True(t, s.Toggle("system"))
	assert.True(t, s.Snapshot().Expanded.Has("system"))
	assert.True(t, s.Toggle("system"))
	assert.False(t, s.Snapshot().Expanded.Has("system"))

	assert.True(t, s.Toggle("system/logs"))
	assert.Equal(t, []string{"system/logs"}, s.Snapshot().Expanded.Keys())

	assert.True(t, s.Toggle("/system/"))
	assert.Equal(t, []string{"system", "system/logs"}, s.Snapshot().Expanded.Keys())
	assert.True(t, s.Toggle("system/"))
	assert.Equal(t, []string{"system/logs"}, s.Snapshot().Expanded.Keys())

	assert.False(t, s.Toggle("system/instruction.txt"))
	assert.False(t, s.Toggle("nowhere"))
	assert.Equal(t, []string{"system/logs"}, s.Snapshot().Expanded.Keys())
}

func TestToggleCanonicalizesKey(t *testing.T) {
	s := newSession(t)
	run(s, "ls")
	require.True(t, s.Toggle("system/"))

	rows := usecase.RenderTree(s.Tree(), s.Snapshot().Expanded)
	require.Len(t, rows, 6)
	assert.Equal(t, "▾ 📁 system", rows[0].Text())
}

func TestSnapshotIsCopy(t *testing.T) {
	s := newSession(t)
	run(s, "ls")
	s.Toggle("system")
	snap := s.Snapshot()
	snap.History[0].Input = "mutated"
	snap.Expanded.Toggle("system")

	again := s.Snapshot()
	assert.Equal(t, "ls", again.History[0].Input)
	assert.True(t, again.Expanded.Has("system"))
}

func TestObserve(t *testing.T) {
	s := newSession(t)
	var events []domain.Event
	s.Observe(func(e domain.Event) { events = append(events, e) })

	s.Edit("ls")
	s.Submit()
	s.Toggle("documents")
	s.Toggle("documents/readme.md")
	s.Exec("clear")

	var types []domain.EventType
	for _, e := range events {
		types = append(types, e.Type)
		assert.Equal(t, "test", e.SessionID)
	}
	assert.Equal(t, []domain.EventType{
		domain.EventEdited,
		domain.EventSubmitted,
		domain.EventToggled,
		domain.EventCleared,
	}, types)
	assert.Equal(t, "ls", events[1].Record.Input)
	assert.True(t, events[2].Expanded)
}
