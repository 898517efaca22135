// Package main is the entry point for meli-gateway.
package main

import (
	"os"

	"github.com/mercadoflow/meli-gateway/cmd/meli-gateway/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
