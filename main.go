package main

import "histwrap/cmd"

func main() {
	cmd.Execute()
}
