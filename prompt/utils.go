package prompt

import "strings"

const ellipsis = " ..."

// Summarize returns the first line of text, shortened to maxLen runes
// in case it is too long. The result ends with " ..." when anything was dropped.
// A maxLen too small to fit the ellipsis is raised to fit it.
func Summarize(text string, maxLen int) string {
	line := text
	if i := strings.IndexByte(text, '\n'); i != -1 {
		line = strings.TrimSpace(text[:i])
	}
	if least := len(ellipsis) + 1; maxLen < least {
		maxLen = least
	}

	runes := []rune(line)

	// In case the line is short enough and nothing was cut, we are done.
	if len(runes) <= maxLen {
		if line == text {
			return line
		}
		return line + ellipsis
	}

	cut := maxLen - len(ellipsis)
	truncated := string(runes[:cut])

	// Drop the last word in case it was cut in half.
	if runes[cut] != ' ' {
		if i := strings.LastIndex(truncated, " "); i != -1 {
			truncated = truncated[:i]
		}
	}

	return truncated + ellipsis
}
