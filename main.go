package main

import (
	"github.com/wachat/wachat-bridge/cmd"
)

func main() {
	cmd.Execute()
}
