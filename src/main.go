package main

import "github.com/sasaplus1/proto-plugin-crystal/src/cmd"

func main() {
	cmd.Execute()
}
