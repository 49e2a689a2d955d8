// msaasm assembles paired-128 MSA vector listings into machine code.
//
// Usage:
//
//	msaasm [-o output] [--format hex|bin|asm] listing.mvs
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
