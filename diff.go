package validate

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// diffLines contrasts two stringified values line by line: lines only in
// actualText are prefixed "+ ", lines only in expectedText "- ", and common
// lines are indented two spaces. The result is rendered verbatim under an
// "Actual (+) vs (-) Expected:" heading by the error formatter.
//
// The diff is computed over the stringified text, not over the values, so
// it can come out all-common even when the comparator reported inequality
// (for example when comparison options distinguish what the dump does not).
func diffLines(actualText, expectedText string) string {
	actual := difflib.SplitLines(actualText)
	expected := difflib.SplitLines(expectedText)

	var b strings.Builder
	for _, op := range difflib.NewMatcher(actual, expected).GetOpCodes() {
		switch op.Tag {
		case 'e':
			writeLines(&b, "  ", actual[op.I1:op.I2])
		case 'd':
			writeLines(&b, "+ ", actual[op.I1:op.I2])
		case 'i':
			writeLines(&b, "- ", expected[op.J1:op.J2])
		case 'r':
			writeLines(&b, "+ ", actual[op.I1:op.I2])
			writeLines(&b, "- ", expected[op.J1:op.J2])
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeLines(b *strings.Builder, prefix string, lines []string) {
	for _, line := range lines {
		b.WriteString(prefix)
		b.WriteString(line)
	}
}
