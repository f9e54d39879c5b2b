package main

import "wcoget/cmd"

func main() {
	cmd.Execute()
}
