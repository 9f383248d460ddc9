/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/ordindex/ordindex/cmd/ordindex/cmd"
)

func main() {
	cmd.Execute()
}
