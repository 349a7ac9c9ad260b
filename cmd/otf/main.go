package main

import "github.com/OpenTraceLab/OpenTraceFrame/cmd/otf/cmd"

func main() {
	cmd.Execute()
}
