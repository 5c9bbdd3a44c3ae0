package main

import "github.com/DSinghania13/girdervis/cmd"

func main() {
	cmd.Execute()
}
