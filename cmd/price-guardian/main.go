// Package main is the entry point for price-guardian.
package main

import (
	"os"

	"github.com/pricewar-labs/price-guardian/cmd/price-guardian/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
