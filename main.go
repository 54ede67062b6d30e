package main

import "github.com/junaidrashid-git/orbit-aether/cmd"

func main() {
	cmd.Execute()
}
