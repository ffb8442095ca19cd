package main

import "github.com/sungur/bowerbridge/internal/cli"

func main() {
	cli.Execute()
}
