package main

import "github.com/obralabs/truss/cmd"

func main() {
	cmd.Execute()
}
