package main

import "github.com/uniformkit/shirtmaker/cmd"

func main() {
	cmd.Execute()
}
