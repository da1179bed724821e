package main

import "github.com/mixtape-dl/mixtape/cmd"

func main() {
	cmd.Execute()
}
