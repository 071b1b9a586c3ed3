package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sukechannnn/vsplit/split"
	"github.com/sukechannnn/vsplit/util"
)

// ResizableSplit stacks a top and a bottom primitive separated by a divider
// that can be dragged with the mouse to change their relative heights.
//
// While a drag is in progress the split captures all mouse events of the
// application, so the drag continues when the pointer leaves the divider or
// the split itself. Releasing the left button anywhere ends the drag.
type ResizableSplit struct {
	*tview.Box

	top    tview.Primitive
	bottom tview.Primitive

	model *split.Model

	// Set once the split has been laid out by Draw.
	measured bool
	// Whether the split or one of its children had focus when the drag started.
	focusedAtDown bool

	dividerStyle       tcell.Style
	activeDividerStyle tcell.Style

	dragFunc    func(dragging bool, ratio float64)
	changedFunc func(ratio float64)
}

// NewResizableSplit returns a split showing top above bottom. Either may be nil.
func NewResizableSplit(top, bottom tview.Primitive, opts ...split.Option) *ResizableSplit {
	s := &ResizableSplit{
		Box:    tview.NewBox(),
		top:    top,
		bottom: bottom,
		dividerStyle: tcell.StyleDefault.
			Foreground(util.DividerColor.ToTcellColor()).
			Background(util.BackgroundColor.ToTcellColor()),
		activeDividerStyle: tcell.StyleDefault.
			Foreground(util.DividerActiveColor.ToTcellColor()).
			Background(util.BackgroundColor.ToTcellColor()).
			Bold(true),
	}
	s.model = split.New(dragMode{s}, opts...)
	return s
}

// dragMode turns the split's drag session into the global drag affordance.
type dragMode struct {
	s *ResizableSplit
}

func (m dragMode) BeginDragMode() {
	if m.s.dragFunc != nil {
		m.s.dragFunc(true, m.s.model.Ratio())
	}
}

func (m dragMode) EndDragMode() {
	if m.s.dragFunc != nil {
		m.s.dragFunc(false, m.s.model.Ratio())
	}
}

// SetDividerStyle sets the style of the divider while idle.
func (s *ResizableSplit) SetDividerStyle(style tcell.Style) *ResizableSplit {
	s.dividerStyle = style
	return s
}

// SetActiveDividerStyle sets the style of the divider while it is dragged.
func (s *ResizableSplit) SetActiveDividerStyle(style tcell.Style) *ResizableSplit {
	s.activeDividerStyle = style
	return s
}

// SetDragFunc sets a handler called once when a drag starts and once when it ends.
func (s *ResizableSplit) SetDragFunc(handler func(dragging bool, ratio float64)) *ResizableSplit {
	s.dragFunc = handler
	return s
}

// SetChangedFunc sets a handler called every time a drag moves the divider.
func (s *ResizableSplit) SetChangedFunc(handler func(ratio float64)) *ResizableSplit {
	s.changedFunc = handler
	return s
}

// Ratio returns the height of the top primitive in percent.
func (s *ResizableSplit) Ratio() float64 {
	return s.model.Ratio()
}

// Dragging reports whether the divider is being dragged.
func (s *ResizableSplit) Dragging() bool {
	return s.model.Dragging()
}

// CancelDrag ends a drag whose button release was never reported.
func (s *ResizableSplit) CancelDrag() bool {
	return s.model.Cancel()
}

// releaseIfFocusLost ends a drag that started while the split had focus once
// focus has moved elsewhere. Focus is delegated to the children, so Blur of the
// split itself is not called by the application.
func (s *ResizableSplit) releaseIfFocusLost() bool {
	if !s.model.Dragging() || !s.focusedAtDown || s.HasFocus() {
		return false
	}
	return s.model.Cancel()
}

// Heights returns the top, divider and bottom heights for the current rect.
func (s *ResizableSplit) Heights() (top, divider, bottom int) {
	_, _, _, height := s.GetInnerRect()
	return s.model.Heights(height)
}

func (s *ResizableSplit) onDivider(y int) bool {
	_, innerY, _, height := s.GetInnerRect()
	top, divider, _ := s.model.Heights(height)
	return y >= innerY+top && y < innerY+top+divider
}

// Draw draws this primitive onto the screen.
func (s *ResizableSplit) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)
	s.releaseIfFocusLost()

	x, y, width, height := s.GetInnerRect()
	s.measured = true
	top, divider, bottom := s.model.Heights(height)

	if s.top != nil {
		s.top.SetRect(x, y, width, top)
		s.top.Draw(screen)
	}
	s.drawDivider(screen, x, y+top, width, divider)
	if s.bottom != nil {
		s.bottom.SetRect(x, y+top+divider, width, bottom)
		s.bottom.Draw(screen)
	}
}

func (s *ResizableSplit) drawDivider(screen tcell.Screen, x, y, width, height int) {
	style, line := s.dividerStyle, '─'
	if s.model.Dragging() {
		style, line = s.activeDividerStyle, '━'
	}
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, line, nil, style)
		}
	}
}

// MouseHandler returns the mouse handler for this primitive.
func (s *ResizableSplit) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return s.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()

		if s.releaseIfFocusLost() {
			return true, nil
		}

		if s.model.Dragging() {
			switch action {
			case tview.MouseLeftUp:
				s.model.PointerUp()
				return true, nil
			case tview.MouseMove:
				// ボタンが離されているのに移動イベントが来た場合は release を取りこぼしている
				if event.Buttons()&tcell.Button1 == 0 {
					s.model.PointerUp()
					return true, nil
				}
				if s.model.PointerMove(y) && s.changedFunc != nil {
					s.changedFunc(s.model.Ratio())
				}
			}
			return true, s
		}

		if !s.InRect(x, y) {
			return false, nil
		}

		if action == tview.MouseLeftDown && s.onDivider(y) {
			_, innerY, _, height := s.GetInnerRect()
			s.focusedAtDown = s.HasFocus()
			s.model.PointerDown(split.Bounds{Top: innerY, Height: height, Measured: s.measured})
			return true, s
		}

		// Pass mouse events along to the child under the pointer.
		for _, p := range []tview.Primitive{s.top, s.bottom} {
			if p == nil {
				continue
			}
			consumed, capture = p.MouseHandler()(action, event, setFocus)
			if consumed {
				return
			}
		}
		return false, nil
	})
}

// InputHandler returns the handler for this primitive.
func (s *ResizableSplit) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return s.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		for _, p := range []tview.Primitive{s.top, s.bottom} {
			if p != nil && p.HasFocus() {
				if handler := p.InputHandler(); handler != nil {
					handler(event, setFocus)
					return
				}
			}
		}
	})
}

// PasteHandler returns the handler for this primitive.
func (s *ResizableSplit) PasteHandler() func(pastedText string, setFocus func(p tview.Primitive)) {
	return s.WrapPasteHandler(func(pastedText string, setFocus func(p tview.Primitive)) {
		for _, p := range []tview.Primitive{s.top, s.bottom} {
			if p != nil && p.HasFocus() {
				if handler := p.PasteHandler(); handler != nil {
					handler(pastedText, setFocus)
					return
				}
			}
		}
	})
}

// Focus is called when this primitive receives focus.
func (s *ResizableSplit) Focus(delegate func(p tview.Primitive)) {
	if s.top != nil {
		delegate(s.top)
		return
	}
	if s.bottom != nil {
		delegate(s.bottom)
		return
	}
	s.Box.Focus(delegate)
}

// HasFocus returns whether or not this primitive has focus.
func (s *ResizableSplit) HasFocus() bool {
	for _, p := range []tview.Primitive{s.top, s.bottom} {
		if p != nil && p.HasFocus() {
			return true
		}
	}
	return s.Box.HasFocus()
}

// Blur is called when this primitive loses focus. An active drag is cancelled.
func (s *ResizableSplit) Blur() {
	s.model.Cancel()
	s.Box.Blur()
}
