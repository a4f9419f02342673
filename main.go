package main

import "fafscan/cmd"

func main() {
	cmd.Execute()
}
