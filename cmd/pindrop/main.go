package main

import "github.com/pindrop-app/pindrop/internal/cli"

func main() {
	cli.Execute()
}
