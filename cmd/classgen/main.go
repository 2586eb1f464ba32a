// Command classgen regenerates the rpgtypes package from schema.Files.
// Run with: go run ./cmd/classgen
package main

import (
	"fmt"
	"os"

	"github.com/andrewfoote/rpgxp-go/classgen"
)

func main() {
	if err := classgen.Generate("rpgtypes"); err != nil {
		fmt.Fprintln(os.Stderr, "classgen:", err)
		os.Exit(1)
	}
}
