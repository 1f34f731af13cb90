package helpers

import (
	"fmt"
	"io"
)

// MustFprintln is fmt.Fprintln for report writers whose errors we can't do anything useful
// about; it panics instead of returning the error.
func MustFprintln(w io.Writer, a ...any) {
	if _, err := fmt.Fprintln(w, a...); err != nil {
		panic(err)
	}
}

func MustFprintf(w io.Writer, format string, a ...any) {
	if _, err := fmt.Fprintf(w, format, a...); err != nil {
		panic(err)
	}
}
