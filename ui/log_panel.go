package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rivo/tview"
	"github.com/sukechannnn/vsplit/git"
	"github.com/sukechannnn/vsplit/util"
)

// FormatCommitLog renders entries as tview color-tagged lines, dates relative to now.
func FormatCommitLog(entries []git.CommitEntry, now time.Time) string {
	if len(entries) == 0 {
		return "[gray]No commits yet[-]"
	}

	var sb strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&sb, "[yellow]%s[-] %s %s(%s, %s)[-]\n",
			entry.ShortHash(),
			tview.Escape(entry.Message),
			util.StatusTextColor.Tag(),
			tview.Escape(entry.Author),
			humanize.RelTime(entry.When, now, "ago", "from now"),
		)
	}
	return sb.String()
}

// NewLogPanel returns a scrollable view of the commit log.
func NewLogPanel(entries []git.CommitEntry) *tview.TextView {
	logView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetScrollable(true)
	logView.SetBorder(true).SetTitle("Git Log")
	logView.SetTitleAlign(tview.AlignLeft)
	logView.SetBackgroundColor(util.BackgroundColor.ToTcellColor())
	logView.SetText(FormatCommitLog(entries, time.Now()))
	return logView
}
