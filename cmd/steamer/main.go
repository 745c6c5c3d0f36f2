package main

import (
	"os"

	"github.com/dshills/steamer/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
