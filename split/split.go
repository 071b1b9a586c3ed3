// Package split holds the interaction model of a vertically split container:
// the top height percentage, its bounds, and the drag session that moves it.
package split

import "math"

// Model owns the split ratio. Only the pointer operations mutate it.
type Model struct {
	cfg   Config
	ratio float64
	drag  *Drag
}

// New creates a model at the configured default, clamped to its bounds.
func New(mode DragMode, opts ...Option) *Model {
	cfg := NewConfig(opts...)
	return &Model{
		cfg:   cfg,
		ratio: Clamp(cfg.DefaultTop, cfg.MinTop, cfg.MaxTop),
		drag:  NewDrag(cfg, mode),
	}
}

func (m *Model) Config() Config {
	return m.cfg
}

// Ratio returns the top height percentage.
func (m *Model) Ratio() float64 {
	return m.ratio
}

// BottomRatio returns the bottom height percentage.
func (m *Model) BottomRatio() float64 {
	return 100 - m.ratio
}

func (m *Model) Dragging() bool {
	return m.drag.Active()
}

func (m *Model) State() State {
	return m.drag.State()
}

// Apply feeds ev to the drag controller. A move that the controller accepts
// becomes the new ratio. It reports whether the event had an effect.
func (m *Model) Apply(ev Event) bool {
	top, ok := m.drag.Handle(ev)
	if ok && ev.Kind == PointerMove {
		m.ratio = top
	}
	return ok
}

// PointerDown starts a drag session.
func (m *Model) PointerDown(b Bounds) bool {
	return m.Apply(Event{Kind: PointerDown, Bounds: b})
}

// PointerMove applies a pointer move. It reports whether the ratio was updated.
func (m *Model) PointerMove(clientY int) bool {
	return m.Apply(Event{Kind: PointerMove, Y: clientY})
}

// PointerUp ends the drag session.
func (m *Model) PointerUp() bool {
	return m.Apply(Event{Kind: PointerUp})
}

// Cancel ends the drag session without a release event.
func (m *Model) Cancel() bool {
	return m.Apply(Event{Kind: PointerCancel})
}

// Heights splits containerHeight into top, divider and bottom sizes.
func (m *Model) Heights(containerHeight int) (top, divider, bottom int) {
	return Heights(containerHeight, m.cfg.DividerThickness, m.ratio)
}

// Heights splits containerHeight at ratio percent. Half of the divider is taken
// from each side so its center sits on the ratio boundary. The three sizes always
// add up to containerHeight.
func Heights(containerHeight, thickness int, ratio float64) (top, divider, bottom int) {
	if containerHeight <= 0 {
		return 0, 0, 0
	}
	if thickness < 0 {
		thickness = 0
	}
	divider = min(thickness, containerHeight)
	top = int(math.Round(ratio/100*float64(containerHeight) - float64(thickness)/2))
	top = max(0, min(top, containerHeight-divider))
	bottom = containerHeight - divider - top
	return top, divider, bottom
}
