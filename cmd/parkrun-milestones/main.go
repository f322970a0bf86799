package main

import "github.com/parkrun-tools/milestones/internal/cli"

func main() {
	cli.Execute()
}
