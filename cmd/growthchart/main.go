package main

import (
	"os"

	"github.com/arloliu/growth/cmd/growthchart/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
