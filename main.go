package main

import "github.com/colfig/colfig/cmd"

func main() {
	cmd.Execute()
}
