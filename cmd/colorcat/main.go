package main

import "github.com/charliek/colorcat/internal/cli"

func main() {
	cli.Execute()
}
