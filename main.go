package main

import "github.com/inovacc/taskr/cmd"

func main() {
	cmd.Execute()
}
