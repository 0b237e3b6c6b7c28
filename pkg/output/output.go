package output

import (
	"fmt"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/Raab70/dax/pkg/check"
)

var (
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, yellow, red, dim, reset = "", "", "", "", ""
	}
}

// formatLabel dims the leading "key:" of a detail line, if present.
func formatLabel(detail string) string {
	key, rest, found := strings.Cut(detail, ": ")
	if !found {
		return detail
	}
	return fmt.Sprintf("%s%s:%s %s", dim, key, reset, rest)
}

// PrintResult outputs a check result with colored status.
// Details are indented to align under the result name.
func PrintResult(r check.Result) {
	label, color := "[OK]", green
	switch r.Status {
	case check.StatusWarn:
		label, color = "[WARN]", yellow
	case check.StatusFail:
		label, color = "[FAIL]", red
	}

	fmt.Printf("%s%s%s %s\n", color, label, reset, r.Name)

	indent := strings.Repeat(" ", len(label)+1)
	for _, d := range r.Details {
		fmt.Printf("%s%s\n", indent, formatLabel(d))
	}
}
