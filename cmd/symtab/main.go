package main

import (
	"os"

	"github.com/arc-language/core-symtab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
