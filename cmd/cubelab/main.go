// Cubelab - interactive NxNxN cube playground for the terminal.
package main

import (
	"github.com/seamusw/cubelab/internal/app/cli"
)

func main() {
	cli.Execute()
}
