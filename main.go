package main

import "github.com/societyops/societyctl/cmd"

func main() {
	cmd.Execute()
}
