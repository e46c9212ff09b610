// Command anyway attributes USD cost to LLM usage records.
//
// Usage:
//
//	# Serve the cost API with metrics and span export
//	anyway serve
//
//	# Show which catalog entry prices a model
//	anyway resolve gpt-4o-2024-08-06
//
//	# Price a single call
//	anyway cost --model gpt-4o --input 1000 --output 500
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
