package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/popwire/internal/reference"
)

const defaultWrapWidth = 100

type FieldsCmd struct {
	flags    *Flags
	markdown bool
	format   string
}

// NewFieldsCmd creates a new fields command.
func NewFieldsCmd(flags *Flags) *FieldsCmd {
	return &FieldsCmd{flags: flags}
}

// Register adds the fields command to the application.
func (cmd *FieldsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "fields",
		Usage:     "Browse the popup option reference",
		UsageText: "popwire fields [options] [query]",
		Description: `Prints every wire option grouped by purpose. A query fuzzy-matches option
names, falling back to a search of the descriptions.

Example:
  popwire fields
  popwire fields btncolor
  popwire fields --markdown > OPTIONS.md`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "markdown",
				Usage:       "print raw markdown instead of rendering it",
				Destination: &cmd.markdown,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *FieldsCmd) run(_ context.Context, c *cli.Command) error {
	query := strings.Join(c.Args().Slice(), " ")
	fields := reference.Search(query)
	if len(fields) == 0 {
		return fmt.Errorf("no options match %q", query)
	}

	w := c.Root().Writer

	if cmd.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(fields)
	}

	md := reference.Markdown(fields)
	if cmd.markdown || !isTerminal(os.Stdout) {
		_, err := io.WriteString(w, md)
		return err
	}

	out, err := reference.Render(md, terminalWidth(os.Stdout))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func terminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWrapWidth
	}
	return min(width, defaultWrapWidth)
}
