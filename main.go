package main

import "github.com/shaharia-lab/salon-notify/cmd"

func main() {
	cmd.Execute()
}
