package main

import "github.com/structeng/beamreport/cmd"

func main() {
	cmd.Execute()
}
