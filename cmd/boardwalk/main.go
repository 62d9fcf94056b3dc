package main

import "github.com/mcoot/boardwalk/internal/cli"

func main() {
	cli.Execute()
}
