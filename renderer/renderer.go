// Package renderer turns the planner's computed structures into markdown
// strings. It holds no business logic: everything it prints is computed by
// the bondplan package first.
package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// mdRenderer wraps a strings.Builder with printf-style helpers shared by the
// report renderers.
type mdRenderer struct {
	*strings.Builder
}

func newRenderer() *mdRenderer { return &mdRenderer{Builder: &strings.Builder{}} }

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// ConditionalBlock lets you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}
