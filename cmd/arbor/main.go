// Command arbor replays tree scripts against a fresh registry and renders
// the resulting trees.
//
//	arbor run scene.yaml --groups --strays
//	arbor check scene.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
