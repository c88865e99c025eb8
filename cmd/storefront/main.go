package main

import "github.com/sciencekitconnect/storefront/internal/cmd"

func main() {
	cmd.Execute()
}
