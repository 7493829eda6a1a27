// Package main implements the relayctl CLI, the deployment engine for the
// relay service.
package main

import "github.com/relayops/relayctl/cmd/relayctl/cmd"

func main() {
	cmd.Execute()
}
