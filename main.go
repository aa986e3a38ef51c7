package main

import "sorucat/cmd"

func main() {
	cmd.Execute()
}
