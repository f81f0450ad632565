package main

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/mitchellh/cli"
	"github.com/mkeeler/fixture-data/maker"
	"github.com/mkeeler/fixture-data/template"
	log "github.com/sirupsen/logrus"
)

type genCommand struct {
	ui           cli.Ui
	templatePath string
	count        int
	inputPrefix  string
	levelString  string

	flags *flag.FlagSet
	help  string
}

func newGenCommand(ui cli.Ui) cli.Command {
	c := &genCommand{
		ui: ui,
	}

	flags := flag.NewFlagSet("", flag.ContinueOnError)

	flags.StringVar(&c.templatePath, "template", "", "Path to the template describing the records to derive")
	flags.IntVar(&c.count, "count", 10, "Number of records to derive")
	flags.StringVar(&c.inputPrefix, "input-prefix", "record", "Identifying input prefix; record i derives from \"<prefix>-<i>\"")
	flags.StringVar(&c.levelString, "log-level", "info", fmt.Sprintf("Log level. Must be one of [%s]", logLevelChoices()))

	c.flags = flags
	c.help = genUsage(`Usage: fixture-data gen [OPTIONS]

	Derive fixture records from a template.

	Each record is determined solely by its identifying input, so re-running
	with the same template and prefix reproduces the output exactly.`, c.flags)

	return c
}

func (c *genCommand) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.ui.Error(fmt.Sprintf("Failed to parse command line arguments: %v", err))
		return 1
	}

	level, err := log.ParseLevel(c.levelString)
	if err != nil {
		c.ui.Error(fmt.Sprintf("Invalid log level choice: %s", c.levelString))
		return 1
	}
	log.SetLevel(level)

	if c.templatePath == "" {
		c.ui.Error("Must supply a template")
		return 1
	}
	if c.count < 1 {
		c.ui.Error(fmt.Sprintf("Invalid record count: %d", c.count))
		return 1
	}

	m, err := template.ReadFile(c.templatePath)
	if err != nil {
		c.ui.Error(fmt.Sprintf("Error reading template: %v", err))
		return 1
	}

	for i := 0; i < c.count; i++ {
		input := fmt.Sprintf("%s-%d", c.inputPrefix, i)
		v, err := maker.Generate(m, input)
		if err != nil {
			c.ui.Error(fmt.Sprintf("Error deriving record %q: %v", input, err))
			return 1
		}

		encoded, err := json.Marshal(v)
		if err != nil {
			c.ui.Error(fmt.Sprintf("Error encoding record %q: %v", input, err))
			return 1
		}
		c.ui.Output(string(encoded))
	}

	log.Debugf("derived %d records from %s", c.count, c.templatePath)
	return 0
}

func (c *genCommand) Synopsis() string {
	return "Derive fixture records from a template"
}

func (c *genCommand) Help() string {
	return c.help
}
