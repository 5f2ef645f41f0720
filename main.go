package main

import "github.com/naka-gawa/ghprofile/cmd"

func main() {
	cmd.Execute()
}
