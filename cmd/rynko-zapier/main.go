package main

import (
	"os"

	"github.com/rynko-dev/zapier/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
