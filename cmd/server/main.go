package main

import "github.com/tailyapp/taily-api/cmd"

func main() {
	cmd.Execute()
}
