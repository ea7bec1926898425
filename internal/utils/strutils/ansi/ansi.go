package ansi

import "regexp"

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

const (
	BrightRed = "\x1b[91m"
	Bold      = "\x1b[1m"
	Reset     = "\x1b[0m"

	HighlightRed = BrightRed + Bold
)

func StripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}
