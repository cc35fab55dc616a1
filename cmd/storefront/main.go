// Package main is the entry point for the storefront API server.
package main

import (
	"os"

	"github.com/donaldgifford/storefront/cmd/storefront/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
