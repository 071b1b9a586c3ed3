package ui

import (
	"fmt"

	"github.com/rivo/tview"
	"github.com/sukechannnn/vsplit/util"
)

var keyBindingMessage = "Drag the divider to resize, 'Tab' to switch panes, 'j/k' to scroll, 'Esc' to release a stuck drag, 'q' to quit."

// FormatSplitStatus returns the status line text for the split state.
func FormatSplitStatus(dragging bool, ratio float64) string {
	if !dragging {
		return keyBindingMessage
	}
	return fmt.Sprintf("[yellow]Resizing[-] top %.0f%% / bottom %.0f%%", ratio, 100-ratio)
}

// NewStatusView returns the one-line status view.
func NewStatusView() *tview.TextView {
	statusView := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft).
		SetWrap(false)
	statusView.SetTextColor(util.StatusTextColor.ToTcellColor())
	statusView.SetBackgroundColor(util.BackgroundColor.ToTcellColor())
	statusView.SetText(keyBindingMessage)
	return statusView
}
