package main

import "pagecraft/cmd/pagecraft-cli/cmd"

func main() {
	cmd.Execute()
}
