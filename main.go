package main

import "github.com/andika/attendance-management/cmd"

func main() {
	cmd.Execute()
}
