package main

import "github.com/cush-shell/cush/cmd"

func main() {
	cmd.Execute()
}
