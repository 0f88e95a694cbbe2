package main

import "github.com/mouse-blink/lloc/cmd"

func main() {
	cmd.Execute()
}
