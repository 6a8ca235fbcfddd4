package main

import "physc/cmd"

func main() {
	cmd.Execute()
}
