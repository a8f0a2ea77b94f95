package main

import "preekrooster/cmd"

func main() {
	cmd.Execute()
}
