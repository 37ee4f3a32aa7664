package game

import "fmt"

// Key is a keyboard key as seen by the session. Anything the session does
// not act on arrives as KeyUnknown.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyH // toggle HUD
	KeyC // copy debug report
)

// String returns the key name used in logs and headless scripts.
func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "esc"
	case KeyArrowLeft:
		return "left"
	case KeyArrowRight:
		return "right"
	case KeyArrowUp:
		return "up"
	case KeyArrowDown:
		return "down"
	case KeyH:
		return "h"
	case KeyC:
		return "c"
	default:
		return "unknown"
	}
}

// direction maps arrow keys onto grid directions.
func (k Key) direction() (Direction, bool) {
	switch k {
	case KeyArrowLeft:
		return DirLeft, true
	case KeyArrowRight:
		return DirRight, true
	case KeyArrowUp:
		return DirUp, true
	case KeyArrowDown:
		return DirDown, true
	default:
		return 0, false
	}
}

// EventKind discriminates Event.
type EventKind uint8

const (
	EventQuit EventKind = iota
	EventMouseUp
	EventKeyDown
)

// Event is one discrete input delivered to the session.
type Event struct {
	Kind EventKind
	Pos  Point // EventMouseUp only
	Key  Key   // EventKeyDown only
}

// QuitEvent is the window-close signal.
func QuitEvent() Event { return Event{Kind: EventQuit} }

// MouseUpEvent is a released left button at window pixel (x, y).
func MouseUpEvent(x, y int) Event { return Event{Kind: EventMouseUp, Pos: Point{X: x, Y: y}} }

// KeyDownEvent is a key press.
func KeyDownEvent(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// String renders the event for logs.
func (e Event) String() string {
	switch e.Kind {
	case EventQuit:
		return "quit"
	case EventMouseUp:
		return fmt.Sprintf("click(%d,%d)", e.Pos.X, e.Pos.Y)
	case EventKeyDown:
		return "key(" + e.Key.String() + ")"
	default:
		return "event(?)"
	}
}

// Phase is the session lifecycle state.
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseStopped
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Session owns all mutable game state and applies input events to it.
// It has no Ebiten dependency so it can be driven headless.
type Session struct {
	grid    Grid
	agent   *Agent
	gate    *StartGate
	running bool
	showHUD bool
	frame   int
	log     *SimLog

	// onCopy receives the debug report when KeyC is pressed.
	onCopy func(report string)
}

// NewSession creates a session in the menu phase with the agent on tile (0,0).
func NewSession(grid Grid, log *SimLog) *Session {
	if log == nil {
		log = NewSimLog(false)
	}
	w, h := grid.WindowSize()
	return &Session{
		grid:    grid,
		agent:   NewAgent(grid),
		gate:    NewStartGate(w, h),
		running: true,
		log:     log,
	}
}

// SetCopyHandler installs the receiver for debug reports.
func (s *Session) SetCopyHandler(fn func(report string)) {
	s.onCopy = fn
}

// Grid returns the session grid.
func (s *Session) Grid() Grid { return s.grid }

// Agent returns the agent.
func (s *Session) Agent() *Agent { return s.agent }

// Gate returns the start gate.
func (s *Session) Gate() *StartGate { return s.gate }

// Log returns the session event log.
func (s *Session) Log() *SimLog { return s.log }

// Frame returns the number of frames dispatched so far.
func (s *Session) Frame() int { return s.frame }

// Running is false once a quit or escape has been handled.
func (s *Session) Running() bool { return s.running }

// ShowHUD reports whether the HUD panel is toggled on.
func (s *Session) ShowHUD() bool { return s.showHUD }

// Phase derives the lifecycle state from the running flag and the gate.
func (s *Session) Phase() Phase {
	switch {
	case !s.running:
		return PhaseStopped
	case s.gate.Started():
		return PhasePlaying
	default:
		return PhaseMenu
	}
}

// Dispatch applies one frame's events in arrival order. Events that follow
// a stop within the same frame are dropped.
func (s *Session) Dispatch(events []Event) {
	s.frame++
	for _, ev := range events {
		if !s.running {
			return
		}
		s.handle(ev)
	}
}

func (s *Session) handle(ev Event) {
	switch ev.Kind {
	case EventQuit:
		s.stop(ev)
	case EventMouseUp:
		s.handleClick(ev)
	case EventKeyDown:
		s.handleKey(ev)
	}
}

func (s *Session) stop(ev Event) {
	s.running = false
	s.log.Add(s.frame, logState, keyStop, ev.String())
}

func (s *Session) handleClick(ev Event) {
	if !s.gate.Started() {
		if s.gate.HandleClick(ev.Pos) {
			s.log.Add(s.frame, logState, keyStart, ev.String())
			return
		}
		s.log.AddVerbose(s.frame, logInput, keyIgnored, ev.String()+" before start")
		return
	}
	from := s.agent.Tile()
	s.agent.MoveToClickedPoint(ev.Pos)
	to := s.agent.Tile()
	s.log.Add(s.frame, logMove, keyClick, fmt.Sprintf("%s (%d,%d) -> (%d,%d)",
		ev, from.Col, from.Row, to.Col, to.Row))
}

func (s *Session) handleKey(ev Event) {
	switch ev.Key {
	case KeyEscape:
		s.stop(ev)
		return
	case KeyH:
		s.showHUD = !s.showHUD
		s.log.Add(s.frame, logInput, keyHUD, fmt.Sprintf("visible=%t", s.showHUD))
		return
	case KeyC:
		if s.onCopy != nil {
			s.onCopy(s.Report())
		}
		s.log.Add(s.frame, logInput, keyCopy, "debug report")
		return
	}

	dir, ok := ev.Key.direction()
	if !ok || !s.gate.Started() {
		s.log.AddVerbose(s.frame, logInput, keyIgnored, ev.String()+" in "+s.Phase().String())
		return
	}
	from := s.agent.Tile()
	s.agent.Step(dir)
	to := s.agent.Tile()
	s.log.Add(s.frame, logMove, keyStep, fmt.Sprintf("%s (%d,%d) -> (%d,%d)",
		dir, from.Col, from.Row, to.Col, to.Row))
}
