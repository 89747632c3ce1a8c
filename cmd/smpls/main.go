package main

import "github.com/katalvlaran/smpls/cmd/smpls/cmd"

func main() {
	cmd.Execute()
}
