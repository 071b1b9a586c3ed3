package util

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
)

type ColorCode string

const (
	BackgroundColor    = ColorCode("#272A32")
	DividerColor       = ColorCode("#383E50")
	DividerActiveColor = ColorCode("#8CAAEE")
	MainTextColor      = ColorCode("#C6D0F5")
	StatusTextColor    = ColorCode("#A5ADCE")
)

func (c ColorCode) hex() string {
	return string(c)[1:]
}

func (c ColorCode) ToTcellColor() tcell.Color {
	hexValue, _ := strconv.ParseInt(c.hex(), 16, 32)
	return tcell.NewHexColor(int32(hexValue))
}

// Tag returns the tview color tag for c.
func (c ColorCode) Tag() string {
	return "[" + string(c) + "]"
}
