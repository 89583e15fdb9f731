// Package cliutil holds small helpers shared by the jsontools commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted text to w, typically a flag set's output when
// rendering usage. A failed write is reported on stderr and otherwise
// ignored; usage text is best effort.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
