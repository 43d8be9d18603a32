package validate

import (
	"fmt"
	"strings"
)

const (
	diffHeading      = "Actual (+) vs (-) Expected:"
	forbiddenHeading = "Forbidden:"

	plainBullet = "* "
	matchMarker = "> "
)

// subjectClause names the value under validation in error messages.
func subjectClause(name string) string {
	if name == "" {
		return "The validated value"
	}
	return fmt.Sprintf("The value of '%s'", name)
}

func newMissingError(a *assertion) *ValidationError {
	return &ValidationError{
		Kind:    KindMissing,
		Subject: a.subject,
		Actual:  a.actual,
		Message: fmt.Sprintf("%s is required, but received %s", a.subject, a.actualText),
	}
}

func newMismatchError(a *assertion, expected any) *ValidationError {
	msg := fmt.Sprintf("%s doesn't match the expected value.\n\n%s\n%s",
		a.subject, diffHeading, diffLines(a.actualText, stringify(expected)))
	return &ValidationError{
		Kind:     KindMismatch,
		Subject:  a.subject,
		Actual:   a.actual,
		Expected: expected,
		Message:  msg,
	}
}

func newForbiddenError(a *assertion, forbidden any) *ValidationError {
	msg := fmt.Sprintf("%s matches the forbidden value.\n\n%s\n%s",
		a.subject, forbiddenHeading, stringify(forbidden))
	return &ValidationError{
		Kind:     KindForbidden,
		Subject:  a.subject,
		Actual:   a.actual,
		Expected: forbidden,
		Message:  msg,
	}
}

func newNoneMatchedError(a *assertion, allowed []any) *ValidationError {
	blocks := make([]string, len(allowed))
	for i, candidate := range allowed {
		blocks[i] = bullet(plainBullet, diffLines(a.actualText, stringify(candidate)))
	}
	msg := fmt.Sprintf("%s doesn't match any of the expected values.\n\n%s\n%s",
		a.subject, diffHeading, strings.Join(blocks, "\n"))
	return &ValidationError{
		Kind:     KindNoneMatched,
		Subject:  a.subject,
		Actual:   a.actual,
		Expected: allowed,
		Message:  msg,
	}
}

func newForbiddenSetError(a *assertion, forbidden []any, matched int) *ValidationError {
	blocks := make([]string, len(forbidden))
	for i, candidate := range forbidden {
		marker := plainBullet
		if i == matched {
			marker = matchMarker
		}
		blocks[i] = bullet(marker, stringify(candidate))
	}
	msg := fmt.Sprintf("%s matches one of the forbidden values.\n\n%s\n%s",
		a.subject, forbiddenHeading, strings.Join(blocks, "\n"))
	return &ValidationError{
		Kind:     KindForbiddenSet,
		Subject:  a.subject,
		Actual:   a.actual,
		Expected: forbidden,
		Message:  msg,
	}
}

// bullet prefixes block with marker and re-indents continuation lines so
// multi-line blocks stay aligned under it.
func bullet(marker, block string) string {
	indent := strings.Repeat(" ", len(marker))
	lines := strings.Split(block, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + lines[i]
	}
	return marker + strings.Join(lines, "\n")
}
