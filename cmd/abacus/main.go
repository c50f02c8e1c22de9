// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

func main() {
	Execute()
}
