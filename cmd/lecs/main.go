package main

import (
	"os"

	"github.com/xiam/lecs/cmd/lecs/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
