package main

import "keysplit/pkg/cli"

func main() {
	cli.Execute()
}
