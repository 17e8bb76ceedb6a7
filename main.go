package main

import "github.com/parthdave/couriersim/cmd"

func main() {
	cmd.Execute()
}
