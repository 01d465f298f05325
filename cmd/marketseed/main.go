package main

import "github.com/draftleague/marketd/cmd/marketseed/cmd"

func main() {
	cmd.Execute()
}
