package main

import (
	"github.com/lumensyntax-org/truthgit-desktop/cmd/cli"
)

func main() {
	cli.Execute()
}
