package main

import (
	"os"

	"github.com/ziadkadry99/docbrowser/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
