package main

import (
	"os"

	"github.com/mitchellh/cli"
)

const version = "0.1.0"

func main() {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := cli.NewCLI("fixture-data", version)
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"gen": func() (cli.Command, error) {
			return newGenCommand(ui), nil
		},
		"sample": func() (cli.Command, error) {
			return newSampleCommand(ui), nil
		},
	}

	exitStatus, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
	}
	os.Exit(exitStatus)
}
