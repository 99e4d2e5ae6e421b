package main

import (
	"os"

	"github.com/kasetapp/kaset/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
