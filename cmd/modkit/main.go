package main

import "github.com/modkit-dev/modkit/pkg/cli"

func main() {
	cli.Execute()
}
