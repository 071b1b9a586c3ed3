package split

import "fmt"

// State is the state of the drag controller.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// EventKind identifies a pointer event fed to the controller.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	// PointerCancel ends a session without a release event (focus loss, lost capture).
	PointerCancel
)

// Bounds is the container box measured at pointer-down.
type Bounds struct {
	Top      int
	Height   int
	Measured bool
}

// Event is a pointer event. Bounds is only read for PointerDown.
type Event struct {
	Kind   EventKind
	Y      int
	Bounds Bounds
}

// DragMode is the global affordance held for the lifetime of a session.
// BeginDragMode and EndDragMode are called exactly once per session.
type DragMode interface {
	BeginDragMode()
	EndDragMode()
}

// Drag translates pointer events into clamped top height percentages.
type Drag struct {
	cfg    Config
	state  State
	bounds Bounds
	mode   DragMode
}

// NewDrag creates an idle controller. mode may be nil.
func NewDrag(cfg Config, mode DragMode) *Drag {
	return &Drag{cfg: cfg, mode: mode}
}

func (d *Drag) State() State {
	return d.state
}

// Active reports whether a session is in progress.
func (d *Drag) Active() bool {
	return d.state == Dragging
}

// Down starts a session with the container bounds measured now.
// It returns false if a session is already active.
func (d *Drag) Down(b Bounds) bool {
	if d.state == Dragging {
		return false
	}
	d.state = Dragging
	d.bounds = b
	if d.mode != nil {
		d.mode.BeginDragMode()
	}
	return true
}

// Move returns the clamped top percentage for a pointer at clientY.
// ok is false when idle or when the container was not measured.
func (d *Drag) Move(clientY int) (top float64, ok bool) {
	if d.state != Dragging || !d.bounds.Measured {
		return 0, false
	}
	mouseY := float64(clientY - d.bounds.Top)
	available := float64(d.bounds.Height - d.cfg.DividerThickness)
	// available <= 0 yields +-Inf or NaN, which Clamp folds onto the bounds.
	r := mouseY / available * 100
	return Clamp(r, d.cfg.MinTop, d.cfg.MaxTop), true
}

// Up ends the session. It returns false if no session was active.
func (d *Drag) Up() bool {
	return d.release()
}

// Cancel ends the session without a release event.
func (d *Drag) Cancel() bool {
	return d.release()
}

func (d *Drag) release() bool {
	if d.state != Dragging {
		return false
	}
	d.state = Idle
	d.bounds = Bounds{}
	if d.mode != nil {
		d.mode.EndDragMode()
	}
	return true
}

// Handle is the transition function. For PointerMove it returns the new top
// percentage; for the other kinds ok reports whether the state changed.
func (d *Drag) Handle(ev Event) (top float64, ok bool) {
	switch ev.Kind {
	case PointerDown:
		return 0, d.Down(ev.Bounds)
	case PointerMove:
		return d.Move(ev.Y)
	case PointerUp:
		return 0, d.Up()
	case PointerCancel:
		return 0, d.Cancel()
	}
	return 0, false
}
