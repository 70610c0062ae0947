package main

import (
	"os"

	"github.com/arulmurugan/vidhai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
