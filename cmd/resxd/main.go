package main

import (
	"os"

	"github.com/dmitrymomot/resxkit/cmd/resxd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
