package main

import "github.com/pyrafetch/pyrafetch/cmd"

func main() {
	cmd.Execute()
}
