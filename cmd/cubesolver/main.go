// cubesolver - command-line Rubik's Cube solver, scrambler and API server.
package main

import (
	"github.com/SeamusWaldron/cubesolver/internal/app/cli"
)

func main() {
	cli.Execute()
}
