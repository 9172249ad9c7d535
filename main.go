/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package main

import (
	"teller/cmd"
)

func main() {
	cmd.Execute()
}
