package main

import "recordbook/cmd/client/cmd"

func main() {
	cmd.Execute()
}
