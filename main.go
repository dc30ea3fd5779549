package main

import "finaura/api/cmd"

func main() {
	cmd.Execute()
}
