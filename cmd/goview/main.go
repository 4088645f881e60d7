package main

import "github.com/philipparndt/goview/cmd"

func main() {
	cmd.Execute()
}
