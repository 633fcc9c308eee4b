package main

import "github.com/mouse-blink/tally/cmd"

func main() {
	cmd.Execute()
}
