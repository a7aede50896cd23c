package main

import (
	"os"

	"github.com/ultraviolet-black/shotty/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
