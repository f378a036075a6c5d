package main

import "rihla/cmd/rihla/root"

func main() {
	root.Execute()
}
