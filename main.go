package main

import "cpu-scheduler/cmd"

func main() {
	cmd.Execute()
}
