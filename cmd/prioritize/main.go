// main is the entry point for the prioritize CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/prioritize/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
