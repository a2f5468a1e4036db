package domain

import "time"

type EventType int

const (
	EventSubmitted EventType = iota
	EventCleared
	EventEdited
	EventToggled
)

func (t EventType) String() string {
	switch t {
	case EventSubmitted:
		return "submitted"
	case EventCleared:
		return "cleared"
	case EventEdited:
		return "edited"
	case EventToggled:
		return "toggled"
	default:
		return "unknown"
	}
}

// Event describes one state transition of a terminal session.
type Event struct {
	Type      EventType
	SessionID string
	Record    CommandRecord
	Input     string
	NodePath  string
	Expanded  bool
	Timestamp time.Time
}

func NewSubmittedEvent(sessionID string, record CommandRecord) Event {
	return Event{
		Type:      EventSubmitted,
		SessionID: sessionID,
		Record:    record,
		Timestamp: time.Now(),
	}
}

func NewClearedEvent(sessionID string) Event {
	return Event{
		Type:      EventCleared,
		SessionID: sessionID,
		Timestamp: time.Now(),
	}
}

func NewEditedEvent(sessionID, input string) Event {
	return Event{
		Type:      EventEdited,
		SessionID: sessionID,
		Input:     input,
		Timestamp: time.Now(),
	}
}

func NewToggledEvent(sessionID, nodePath string, expanded bool) Event {
	return Event{
		Type:      EventToggled,
		SessionID: sessionID,
		NodePath:  nodePath,
		Expanded:  expanded,
		Timestamp: time.Now(),
	}
}

// ChangesHistory reports whether the transcript was modified.
func (e Event) ChangesHistory() bool {
	return e.Type == EventSubmitted || e.Type == EventCleared
}

func (e Event) String() string {
	switch e.Type {
	case EventSubmitted:
		return e.Type.String() + ": " + e.Record.Path + " $ " + e.Record.Input
	case EventToggled:
		state := "collapsed"
		if e.Expanded {
			state = "expanded"
		}
		return e.Type.String() + ": " + e.NodePath + " " + state
	default:
		return e.Type.String()
	}
}
