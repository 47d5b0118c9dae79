package main

import "github.com/mcoot/wordgrid/internal/cli"

func main() {
	cli.Execute()
}
