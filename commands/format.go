package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/uhppoted-sheets/spreadsheet"
)

var FormatCellCmd = FormatCell{
	command:   newCommand(),
	worksheet: "",
	cell:      "",
	color:     "",
}

type FormatCell struct {
	command
	worksheet string
	cell      string
	color     string
}

func (cmd *FormatCell) Name() string {
	return "format-cell"
}

func (cmd *FormatCell) Description() string {
	return "Sets the background colour of a worksheet cell"
}

func (cmd *FormatCell) Usage() string {
	return "--url <url> --worksheet <title> --cell <cell> --color <#rrggbb>"
}

func (cmd *FormatCell) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] format-cell [options] --url <URL> --worksheet <title> --cell <cell> [--color <#rrggbb>]\n", APP)
	fmt.Println()
	fmt.Println("  Sets the background colour of a single cell. Clears the background if --color is not specified.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-sheets format-cell --url "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" --worksheet ACL --cell C7 --color "#ffcc00"`)
	fmt.Println()
}

func (cmd *FormatCell) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("format-cell")

	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Worksheet title")
	flagset.StringVar(&cmd.cell, "cell", cmd.cell, "Cell address e.g. 'C7'")
	flagset.StringVar(&cmd.color, "color", cmd.color, "Background colour e.g. '#ffcc00'")

	return flagset
}

func (cmd *FormatCell) Execute(args ...any) error {
	if err := cmd.validate(getOptions(args)); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.worksheet) == "" {
		return fmt.Errorf("--worksheet is a required option")
	}

	if strings.TrimSpace(cmd.cell) == "" {
		return fmt.Errorf("--cell is a required option")
	}

	var color *sheets.Color
	if cmd.color != "" {
		c, err := spreadsheet.ParseColor(cmd.color)
		if err != nil {
			return err
		}

		color = c
	}

	ctx := context.Background()

	s, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	if err := s.FormatBackground(ctx, cmd.worksheet, cmd.cell, color); err != nil {
		return err
	}

	infof("Formatted %v!%v", cmd.worksheet, cmd.cell)

	return nil
}
