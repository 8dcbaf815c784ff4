package main

import "tern/cmd"

func main() {
	cmd.Execute()
}
