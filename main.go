package main

import (
	"os"

	"github.com/termninja/termninja/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
