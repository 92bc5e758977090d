package main

import "github.com/notargets/tetwrap/cmd"

func main() {
	cmd.Execute()
}
