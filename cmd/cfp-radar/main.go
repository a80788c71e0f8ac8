package main

import "github.com/pmorel/cfp-radar/internal/cli"

func main() {
	cli.Execute()
}
