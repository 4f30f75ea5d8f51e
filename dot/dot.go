package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/symgraph/core"
)

// graphHeader opens the digraph with the defaults shared by every export.
const graphHeader = "digraph symbols {\n" +
	"  rankdir=LR;\n" +
	"  node [shape=box, fontname=\"Helvetica\"];\n"

// Export renders the graph as DOT text.
func Export(g *core.Graph) string {
	var b strings.Builder
	// Write on strings.Builder cannot fail.
	_ = Write(&b, g)

	return b.String()
}

// Write streams the DOT rendering of g to w, in the graph's insertion
// order. The only possible errors are w's.
func Write(w io.Writer, g *core.Graph) error {
	if _, err := io.WriteString(w, graphHeader); err != nil {
		return err
	}

	var err error
	g.EachNode(func(n *core.Node) {
		if err != nil {
			return
		}
		err = writeNode(w, n)
	})
	if err != nil {
		return err
	}

	g.EachEdge(func(e *core.Edge) {
		if err != nil {
			return
		}
		err = writeEdge(w, e)
	})
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, "}\n")

	return err
}

// writeNode emits one node statement: id-based name, name+kind label,
// signature tooltip when attached.
func writeNode(w io.Writer, n *core.Node) error {
	label := fmt.Sprintf("%s\\n(%s)", escape(n.Name()), n.Kind())
	if sig, ok := n.Signature(); ok {
		_, err := fmt.Fprintf(w, "  n%d [label=\"%s\", tooltip=\"%s\"];\n",
			n.ID(), label, escape(sig))
		return err
	}
	_, err := fmt.Fprintf(w, "  n%d [label=\"%s\"];\n", n.ID(), label)

	return err
}

// writeEdge emits one edge statement: member edges solid and unlabeled,
// all other kinds dashed with a kind label.
func writeEdge(w io.Writer, e *core.Edge) error {
	if e.Kind() == core.EdgeMember {
		_, err := fmt.Fprintf(w, "  n%d -> n%d;\n", e.From().ID(), e.To().ID())
		return err
	}
	_, err := fmt.Fprintf(w, "  n%d -> n%d [style=dashed, label=\"%s\"];\n",
		e.From().ID(), e.To().ID(), e.Kind())

	return err
}

// escape makes a string safe inside a double-quoted DOT attribute.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)

	return s
}
