package core

// Action represents a semantic input event, abstracted from physical key presses.
// The engine only cares whether the user asked to quit or pressed something else.
type Action int

const (
	ActionNone       Action = iota
	ActionQuit              // Q, Esc, Ctrl+C - dismiss the screensaver
	ActionKey               // any other key - clears the screen or dismisses
	ActionScreenshot        // Ctrl+S - handled by the platform, never queued
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionQuit:
		return "Quit"
	case ActionKey:
		return "Key"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// InputQueue buffers actions between the platform event loop and the tick
// loop. Polling never blocks: an empty queue reports ok == false.
type InputQueue struct {
	pending []Action
}

// NewInputQueue creates an empty queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{}
}

// Push appends an action. ActionNone is dropped.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.pending = append(q.pending, a)
}

// Poll removes and returns the oldest pending action.
func (q *InputQueue) Poll() (Action, bool) {
	if len(q.pending) == 0 {
		return ActionNone, false
	}
	a := q.pending[0]
	q.pending = q.pending[1:]
	return a, true
}

// Len returns the number of pending actions.
func (q *InputQueue) Len() int {
	return len(q.pending)
}

// Clear drops all pending actions.
func (q *InputQueue) Clear() {
	q.pending = q.pending[:0]
}
