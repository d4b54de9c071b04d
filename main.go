package main

import "github.com/hirelink/ms-go-billing/cmd"

func main() {
	cmd.Execute()
}
