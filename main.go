package main

import "github.com/jsphweid/midiscale/cmd"

func main() {
	cmd.Execute()
}
