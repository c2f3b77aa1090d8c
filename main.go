/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/JohanThomas16/valucompany-data-integration/cmd"

func main() {
	cmd.Execute()
}
