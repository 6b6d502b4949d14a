package main

import "github.com/sanjaygurung/wildfolio/cmd"

func main() {
	cmd.Execute()
}
