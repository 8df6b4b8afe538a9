package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/uhppoted/uhppoted-sheets/address"
)

var WriteRowCmd = Write{
	command: newCommand(),
	cell:    "A1",
	column:  false,
}

var WriteColumnCmd = Write{
	command: newCommand(),
	cell:    "A1",
	column:  true,
}

// Write writes its positional arguments across a row or down a column, starting
// at a cell.
type Write struct {
	command
	cell   string
	column bool
	flags  *flag.FlagSet
}

func (cmd *Write) Name() string {
	if cmd.column {
		return "write-column"
	}

	return "write-row"
}

func (cmd *Write) Description() string {
	if cmd.column {
		return "Writes a list of values down a column of the default worksheet"
	}

	return "Writes a list of values across a row of the default worksheet"
}

func (cmd *Write) Usage() string {
	return "--url <url> --cell <cell> <values...>"
}

func (cmd *Write) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] %s [options] --url <URL> --cell <cell> <value> <value> ...\n", APP, cmd.Name())
	fmt.Println()
	fmt.Println("  " + cmd.Description() + ", starting at the cell. Values are stored verbatim.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    uhppoted-sheets %s --url \"1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms\" --cell B2 alpha beta gamma\n", cmd.Name())
	fmt.Println()
}

// FlagSet is retained so that Execute can retrieve the parsed positional values.
func (cmd *Write) FlagSet() *flag.FlagSet {
	if cmd.flags == nil {
		cmd.flags = cmd.flagset(cmd.Name())
		cmd.flags.StringVar(&cmd.cell, "cell", cmd.cell, "Start cell e.g. 'B2'")
	}

	return cmd.flags
}

func (cmd *Write) Execute(args ...any) error {
	if err := cmd.validate(getOptions(args)); err != nil {
		return err
	}

	row, col, err := address.ParseCell(cmd.cell)
	if err != nil {
		return err
	}

	values := cmd.FlagSet().Args()
	if len(values) == 0 {
		return fmt.Errorf("no values to write")
	}

	ctx := context.Background()

	s, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	if cmd.column {
		err = s.WriteColumn(ctx, col, row, values)
	} else {
		err = s.WriteRow(ctx, row, col, values)
	}

	if err != nil {
		return err
	}

	infof("Wrote %v values starting at %v", len(values), cmd.cell)

	return nil
}
