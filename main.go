package main

import (
	"os"

	"github.com/lox-lang/lox/cmd"
)

func main() {
	app := cmd.NewLoxApp()
	os.Exit(app.Main(os.Args[1:]))
}
