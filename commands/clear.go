package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"
)

var ClearCmd = Clear{
	command: newCommand(),
	ranges:  "",
}

type Clear struct {
	command
	ranges string
}

func (cmd *Clear) Name() string {
	return "clear"
}

func (cmd *Clear) Description() string {
	return "Clears the values from one or more Google Sheets ranges"
}

func (cmd *Clear) Usage() string {
	return "--url <url> --range <ranges>"
}

func (cmd *Clear) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] clear [options] --url <URL> --range <range>[,<range>...]\n", APP)
	fmt.Println()
	fmt.Println("  Clears the values (but not the formatting) from the ranges")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-sheets clear --url "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" --range "ACL!A2:E,Log!A1:H"`)
	fmt.Println()
}

func (cmd *Clear) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("clear")

	flagset.StringVar(&cmd.ranges, "range", cmd.ranges, "Comma separated list of spreadsheet ranges e.g. 'ACL!A2:E,Log!A1:H'")

	return flagset
}

func (cmd *Clear) Execute(args ...any) error {
	if err := cmd.validate(getOptions(args)); err != nil {
		return err
	}

	ranges := []string{}
	for _, r := range strings.Split(cmd.ranges, ",") {
		if r = strings.TrimSpace(r); r != "" {
			ranges = append(ranges, r)
		}
	}

	if len(ranges) == 0 {
		return fmt.Errorf("--range is a required option")
	}

	ctx := context.Background()

	s, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	if err := s.Clear(ctx, ranges...); err != nil {
		return err
	}

	infof("Cleared %v", strings.Join(ranges, ", "))

	return nil
}
