package main

import "github.com/Sofiane224434/cinetech/cmd"

func main() {
	cmd.Execute()
}
