package main

import "github.com/mcoot/smartscrabble/internal/cli"

func main() {
	cli.Execute()
}
