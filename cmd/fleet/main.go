// Package main provides the fleet CLI.
package main

import "github.com/mesh-intelligence/fleet/internal/cli"

func main() {
	cli.Execute()
}
