package main

import (
	"os"

	"github.com/prdy/prdy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
