package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of the given nodes
func Print(nodes []Node) {
	Fprint(os.Stdout, nodes)
}

// Fprint writes a human-readable representation of the given nodes to w
func Fprint(w io.Writer, nodes []Node) {
	for i := range nodes {
		printLevel(w, nodes[i], 0)
	}
}

func printLevel(w io.Writer, n Node, level int) {
	indent := strings.Repeat("    ", level)

	switch n := n.(type) {
	case *SequenceNode:
		fmt.Fprintf(w, "%s(%s): %v %v\n", indent, n.Kind, n.Start, n.End)
		for i := range n.Children {
			printLevel(w, n.Children[i], level+1)
		}

	case *SymbolNode:
		fmt.Fprintf(w, "%s(symbol): %v\n", indent, n.Token)

	case nil:
		fmt.Fprintf(w, "%s:nil\n", indent)

	default:
		panic("unknown node type")
	}
}

// Encode transforms the given nodes into their canonical text representation:
// comments and insignificant whitespace are dropped and elements are separated
// by a single space.
func Encode(nodes []Node) []byte {
	return []byte(encodeList(nodes))
}

func encodeList(nodes []Node) string {
	encoded := make([]string, 0, len(nodes))
	for i := range nodes {
		encoded = append(encoded, encodeNode(nodes[i]))
	}
	return strings.Join(encoded, " ")
}

func encodeNode(n Node) string {
	switch n := n.(type) {
	case *SequenceNode:
		opening, closing := n.Kind.Delimiters()
		return opening + encodeList(n.Children) + closing

	case *SymbolNode:
		return n.Token.Text()

	case nil:
		return ":nil"

	default:
		panic("unknown node type")
	}
}
