package main

import "os"

func helper() {
	os.Exit(2)
}

func main() {
	helper()
	defer func() {
		os.Exit(1) // want "direct call os.Exit is not allowed in main function"
	}()
	os.Exit(0) // want "direct call os.Exit is not allowed in main function"
}
