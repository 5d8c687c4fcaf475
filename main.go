package main

import "github.com/kamusis/catalog-cli/cmd"

func main() {
	cmd.Execute()
}
