package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/lecs"
	"github.com/xiam/lecs/ast"
)

func printTree(nodes []ast.Node) {
	for _, node := range nodes {
		printIndentedTree(node, 0)
	}
}

func printIndentedTree(node ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	switch n := node.(type) {
	case *ast.SequenceNode:
		fmt.Printf("%s<%s>\n", indent, n.Kind)
		for i := range n.Children {
			printIndentedTree(n.Children[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, n.Kind)
	case *ast.SymbolNode:
		tag := "symbol"
		if n.IsString() {
			tag = "string"
		}
		fmt.Printf("%s<%s>%v</%s>\n", indent, tag, n.Text(), tag)
	}
}

func main() {
	input := `(fn_a (fn_b [89 :A :B [67 3.27]]) (fn_c 66 3 53 "Hello world!" 😊))`

	nodes, err := lecs.ReadString(input)
	if err != nil {
		src := lecs.NewSource("example", input)
		log.Fatal(lecs.WrapErrorWithSource(err, src))
	}

	printTree(nodes)
}
