package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/bstviz/bst"
)

// ASCII writes t sideways, right subtree on top, one key per line indented
// four spaces per level. An empty tree prints "(empty)".
func ASCII(w io.Writer, t bst.Tree) error {
	bw := bufio.NewWriter(w)
	if t.IsEmpty() {
		fmt.Fprintln(bw, "(empty)")
		return errors.Wrap(bw.Flush(), "render: ascii")
	}

	type item struct {
		n     *bst.Node
		depth int
	}
	// reverse in-order with an explicit stack
	var stack []item
	n, depth := t.Root(), 0
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, item{n, depth})
			n, depth = n.Right(), depth+1
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fmt.Fprintf(bw, "%s%d\n", strings.Repeat("    ", top.depth), top.n.Value())
		n, depth = top.n.Left(), top.depth+1
	}

	return errors.Wrap(bw.Flush(), "render: ascii")
}

// Sequence formats keys the way the visualizer footer does: joined by
// arrows, or a dash when empty.
func Sequence(vals []int64) string {
	if len(vals) == 0 {
		return "—"
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, " → ")
}
