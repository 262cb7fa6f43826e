/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/amnafatimaa/blog-app/cmd"

func main() {
	cmd.Execute()
}
