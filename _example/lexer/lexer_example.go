package main

import (
	"fmt"
	"log"

	"github.com/xiam/lecs"
	"github.com/xiam/lecs/lexer"
)

func main() {
	input := `
		(fn_a ; comment
			(fn_b [89 :A :B [67 3.27]])
			(fn_c 66 3 53 "Hello world!" {:set 1})
		)
	`

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	src := lecs.NewSource("example", input)
	for i, tok := range tokens {
		pos := src.Position(tok.Location().Start)
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d, loc: %v)\n\t-> %q\n\n", i, tt, pos.Line, pos.Column, tok.Location(), tok.Text())
	}
}
