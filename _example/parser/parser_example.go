package main

import (
	"log"

	"github.com/xiam/lecs/ast"
	"github.com/xiam/lecs/lexer"
	"github.com/xiam/lecs/parser"
)

func main() {
	input := `(fn_a (fn_b [89 :A :B [67 3.27]]) (fn_c 66 3 53 "Hello world!" 😊) {x y})`

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	nodes, err := parser.Parse(tokens)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(nodes)
}
