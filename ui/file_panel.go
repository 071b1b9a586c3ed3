package ui

import (
	"strings"

	"github.com/rivo/tview"
	"github.com/sukechannnn/vsplit/util"
)

// FormatChangedFiles renders the changed files of the working tree.
func FormatChangedFiles(modifiedFiles, untrackedFiles []string) string {
	var fileList []string

	// 変更されたファイル
	if len(modifiedFiles) > 0 {
		fileList = append(fileList, "[yellow]Modified Files:[-]")
		for _, file := range modifiedFiles {
			file = strings.TrimSpace(file)
			if file != "" {
				fileList = append(fileList, " "+tview.Escape(file))
			}
		}
	}

	// 未追跡ファイル
	if len(untrackedFiles) > 0 {
		if len(fileList) > 0 {
			fileList = append(fileList, "")
		}
		fileList = append(fileList, "[yellow]Untracked Files:[-]")
		for _, file := range untrackedFiles {
			file = strings.TrimSpace(file)
			if file != "" {
				fileList = append(fileList, " "+tview.Escape(file))
			}
		}
	}

	if len(fileList) == 0 {
		return "No file content ✨"
	}
	return strings.Join(fileList, "\n")
}

// NewFilePanel returns a scrollable view of content titled title.
func NewFilePanel(title, content string) *tview.TextView {
	textView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetScrollable(true).
		SetTextAlign(tview.AlignLeft)
	textView.SetBorder(true).SetTitle(title)
	textView.SetTitleAlign(tview.AlignLeft)
	textView.SetBackgroundColor(util.BackgroundColor.ToTcellColor())
	textView.SetText(content)
	return textView
}

// NewSourcePanel returns a file panel with filePath highlighted by chroma.
func NewSourcePanel(filePath, content string) *tview.TextView {
	return NewFilePanel(filePath, util.HighlightSource(filePath, content))
}
