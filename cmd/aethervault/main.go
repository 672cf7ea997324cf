package main

import "aethervault/internal/cli"

func main() {
	cli.Execute()
}
