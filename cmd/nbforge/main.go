package main

import "github.com/nbforge/nbforge/internal/cli"

func main() {
	cli.Execute()
}
