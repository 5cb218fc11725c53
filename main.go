package main

import "github.com/jsphweid/relayseq/cmd"

func main() {
	cmd.Execute()
}
