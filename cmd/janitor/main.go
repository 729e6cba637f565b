package main

import (
	"os"

	"github.com/msto63/janitor/cmd/janitor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
