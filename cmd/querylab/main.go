package main

import "github.com/aalvaropc/querylab/internal/cli"

func main() {
	cli.Execute()
}
