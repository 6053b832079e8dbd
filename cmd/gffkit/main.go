// cmd/gffkit/main.go
package main

import (
	"os"

	"gffkit/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
