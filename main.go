package main

import "github.com/alexiusacademia/gosite/cmd"

func main() {
	cmd.Execute()
}
