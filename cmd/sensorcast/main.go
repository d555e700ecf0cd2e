package main

import "github.com/bitvane/sensorcast/cmd/sensorcast/cmd"

func main() {
	cmd.Execute()
}
