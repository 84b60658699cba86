package main

import cmd "github.com/rohmanhakim/linkscrub/internal/cli"

func main() {
	cmd.Execute()
}
