package main

import "github.com/kasuboski/serialz/cmd"

func main() {
	cmd.Execute()
}
