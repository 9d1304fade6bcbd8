package main

import (
	_ "time/tzdata"

	"dersctl/cmd"
)

func main() {
	cmd.Execute()
}
