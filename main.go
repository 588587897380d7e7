package main

import "github.com/papapumpkin/spectra/cmd"

func main() {
	cmd.Execute()
}
