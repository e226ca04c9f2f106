package main

import "github.com/mcoot/pickleball-finder/internal/cli"

func main() {
	cli.Execute()
}
