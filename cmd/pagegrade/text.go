package main

import (
	"fmt"

	"github.com/fwojciec/pagegrade"
	"github.com/fwojciec/pagegrade/yaml"
)

// Run executes the text command.
func (c *TextCmd) Run(deps *Dependencies) error {
	text, err := readText(c.Path, deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagegrade.ErrorMessage(err))
		return err
	}

	stats, err := deps.Texts.AnalyzeText(deps.Ctx, text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagegrade.ErrorMessage(err))
		return err
	}

	if pagegrade.Format(c.Format) == pagegrade.FormatYAML {
		return yaml.Encode(deps.Stdout, stats)
	}
	return writeJSON(deps.Stdout, stats)
}
