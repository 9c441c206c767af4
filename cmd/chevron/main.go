// Command chevron is a terminal editor with `<>` inline autocomplete.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
