package main

import "github.com/CrueChan/Timer/cmd"

func main() {
	cmd.Execute()
}
