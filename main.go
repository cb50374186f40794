package main

import (
	"os"

	"github.com/devgrill/repogrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
