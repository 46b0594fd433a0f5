package main

import (
	"os"

	"github.com/develmaycare/pyprojectutils/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
