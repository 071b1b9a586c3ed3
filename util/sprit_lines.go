package util

import "strings"

// SplitLines splits a string by newline characters. A trailing newline does not
// produce an empty last line.
func SplitLines(input string) []string {
	lines := []string{}
	var currentLine strings.Builder
	for _, r := range input {
		if r == '\n' {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
		} else {
			currentLine.WriteRune(r)
		}
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}
	return lines
}
