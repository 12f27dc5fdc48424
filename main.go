package main

import "github.com/diogo/genchat/internal/commands"

func main() {
	commands.Execute()
}
