package main

import (
	"os"

	"github.com/nileworks/mockpile/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
