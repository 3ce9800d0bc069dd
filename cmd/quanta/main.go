package main

import "github.com/katalvlaran/quanta/cmd"

func main() {
	cmd.Execute()
}
