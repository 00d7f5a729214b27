package main

import "github.com/sathishrouthu/blog-cli/internal/cmd"

func main() {
	cmd.Execute()
}
