package main

import "github.com/draftleague/marketd/cmd/marketd/cmd"

func main() {
	cmd.Execute()
}
