package main

import "github.com/lepinkainen/nebula/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
