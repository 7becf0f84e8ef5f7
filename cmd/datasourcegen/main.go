package main

import "github.com/aicoach/datasourcegen/internal/cli"

func main() {
	cli.Execute()
}
