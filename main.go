package main

import "github.com/minhvu-dev/shopee-track/cmd"

func main() {
	cmd.Execute()
}
