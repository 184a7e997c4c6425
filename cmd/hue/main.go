package main

import (
	"context"
	"os"
)

func main() {
	cli := NewCLI(os.Stdout, os.Stderr)
	os.Exit(cli.Run(context.Background(), os.Args[1:]))
}
