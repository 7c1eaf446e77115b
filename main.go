package main

import "github.com/MatthewFay/git-query/cmd"

func main() {
	cmd.Run()
}
