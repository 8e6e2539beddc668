// Command imuidump builds scripted imui frames without a window and prints
// what the core produced: draw commands, the resolved widget tree and
// context statistics.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
