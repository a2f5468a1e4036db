package usecase

import (
	"strings"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/ponyo877/mockterm/widget/domain"
)

const (
	cmdList     = "ls"
	cmdCdPrefix = "cd "
	cmdClear    = "clear"
	argParent   = ".."
)

// Session is one simulated shell. It is driven from a single UI goroutine
// and is not safe for concurrent use.
type Session struct {
	id          string
	repo        Repository
	config      domain.PromptConfig
	dir         domain.WorkingDir
	history     []domain.CommandRecord
	pending     string
	treeVisible bool
	expanded    ExpandedSet
	observers   []func(domain.Event)
	logger      *zap.Logger
}

type Option func(*Session)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

func NewSession(repo Repository, config domain.PromptConfig, opts ...Option) *Session {
	s := &Session{
		id:       ulid.Make().String(),
		repo:     repo,
		config:   config,
		dir:      domain.NewWorkingDir(config.HomeToken),
		expanded: make(ExpandedSet),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session", s.id))
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Tree() *domain.Node {
	return s.repo.Root()
}

// Observe registers fn to be called after every state transition.
func (s *Session) Observe(fn func(domain.Event)) {
	s.observers = append(s.observers, fn)
}

// Edit replaces the pending input with the full text of the input field.
func (s *Session) Edit(text string) {
	s.pending = text
	s.publish(domain.NewEditedEvent(s.id, text))
}

// Exec types line and submits it.
func (s *Session) Exec(line string) {
	s.pending = line
	s.Submit()
}

// Submit interprets the pending input. Every command except clear is
// recorded with the working directory it was typed in.
func (s *Session) Submit() {
	raw := s.pending
	cmd := strings.ToLower(strings.TrimSpace(raw))
	before := s.dir.String()

	switch {
	case cmd == cmdList:
		s.treeVisible = true
	case strings.HasPrefix(cmd, cmdCdPrefix):
		s.changeDir(cmd[len(cmdCdPrefix):])
	case cmd == cmdClear:
		s.clear()
		return
	}

	record := domain.NewCommandRecord(raw, "", before)
	s.history = append(s.history, record)
	s.pending = ""
	s.publish(domain.NewSubmittedEvent(s.id, record))
}

func (s *Session) changeDir(args string) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return
	}
	if fields[0] == argParent {
		s.dir = s.dir.Up()
		return
	}
	s.dir = s.dir.Enter(fields[0])
}

func (s *Session) clear() {
	s.history = nil
	s.treeVisible = false
	s.pending = ""
	s.publish(domain.NewClearedEvent(s.id))
}

// Toggle flips the expanded state of the folder at key and reports
// whether anything changed. Files and unknown keys are ignored. Keys are
// stored in canonical form, so "/system/" and "system" name the same row.
func (s *Session) Toggle(key string) bool {
	path := domain.NewPath(key)
	if !s.repo.IsFolder(path) {
		return false
	}
	key = path.String()
	expanded := s.expanded.Toggle(key)
	s.publish(domain.NewToggledEvent(s.id, key, expanded))
	return true
}

func (s *Session) Snapshot() Snapshot {
	history := make([]domain.CommandRecord, len(s.history))
	copy(history, s.history)
	return Snapshot{
		ID:           s.id,
		Config:       s.config,
		CurrentPath:  s.dir.String(),
		History:      history,
		PendingInput: s.pending,
		TreeVisible:  s.treeVisible,
		Expanded:     s.expanded.Clone(),
	}
}

func (s *Session) publish(event domain.Event) {
	if event.Type == domain.EventEdited {
		s.logger.Debug("input edited", zap.Int("length", len(event.Input)))
	} else {
		s.logger.Debug("session event",
			zap.Stringer("type", event.Type),
			zap.String("event", event.String()),
			zap.String("path", s.dir.String()),
			zap.Int("history", len(s.history)))
	}
	for _, fn := range s.observers {
		fn(event)
	}
}
