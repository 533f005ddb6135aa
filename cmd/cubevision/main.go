// Cubevision - CLI application for importing cube scans and replaying solutions.
package main

import (
	"github.com/SeamusWaldron/cubevision/internal/cli"
)

func main() {
	cli.Execute()
}
