// Package main is the entry point for the ztar CLI.
package main

import "ztar.dev/pkg/ztar/cmd"

func main() {
	cmd.Execute()
}
