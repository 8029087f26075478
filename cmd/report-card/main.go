package main

import "github.com/oshokin/report-card/cmd/report-card/cmd"

func main() {
	cmd.Execute()
}
