package main

import "holcore/cmd"

func main() {
	cmd.Execute()
}
