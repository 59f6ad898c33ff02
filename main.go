package main

import "pedidocalc/cmd"

func main() {
	cmd.Execute()
}
