package validate

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// dumper renders values for error messages and diffing. Pointer addresses
// and capacities are suppressed and map keys sorted so the output is
// deterministic for a given value; spew detects circular references and
// renders a placeholder instead of recursing.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// stringify produces the textual form of value used in error messages.
// Composite values span multiple lines, giving the diff line granularity.
func stringify(value any) string {
	return strings.TrimRight(dumper.Sdump(value), "\n")
}
