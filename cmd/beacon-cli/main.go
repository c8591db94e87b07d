package main

import "github.com/beaconhouse/beacon/cmd/beacon-cli/cmd"

func main() {
	cmd.Execute()
}
