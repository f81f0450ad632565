package main

import (
	"bytes"
	"flag"
	"fmt"
	"strings"

	"github.com/kr/text"
)

const maxLineLength = 72

func genUsage(txt string, flags *flag.FlagSet) string {
	u := &bytes.Buffer{}
	u.WriteString(strings.TrimSpace(text.Wrap(txt, maxLineLength)))
	u.WriteString("\n\nOptions:\n\n")

	flags.VisitAll(func(f *flag.Flag) {
		example, _ := flag.UnquoteUsage(f)
		if example != "" {
			fmt.Fprintf(u, "  -%s=<%s>\n", f.Name, example)
		} else {
			fmt.Fprintf(u, "  -%s\n", f.Name)
		}
		indented := text.Indent(text.Wrap(f.Usage, maxLineLength), "     ")
		fmt.Fprintf(u, "%s\n\n", indented)
	})

	return strings.TrimSpace(u.String())
}

func logLevelChoices() string {
	return strings.Join([]string{"debug", "info", "warn", "error"}, ", ")
}
