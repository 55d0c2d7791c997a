package report

import (
	"regexp"
	"strings"
)

var (
	formulaPattern  = regexp.MustCompile(`([A-Z][a-z]*)(\d+)`)
	exponentPattern = regexp.MustCompile(`(\w)\^(-?[\d.]+)`)
	subscripts      = strings.NewReplacer(
		"0", "₀", "1", "₁", "2", "₂", "3", "₃", "4", "₄",
		"5", "₅", "6", "₆", "7", "₇", "8", "₈", "9", "₉",
	)
)

// FormatScientific renders element counts as subscripts (H2O -> H₂O) and
// simple exponents as inline math (x^2 -> $x^{2}$). It is for display only.
func FormatScientific(text string) string {
	if text == "" {
		return ""
	}

	text = formulaPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := formulaPattern.FindStringSubmatch(match)
		return groups[1] + subscripts.Replace(groups[2])
	})

	return exponentPattern.ReplaceAllString(text, `$$${1}^{${2}}$$`)
}
