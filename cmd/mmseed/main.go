// Command mmseed seeds multi-member districting plans by merging the
// districts of a single-member plan into connected groups of given sizes.
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
