package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"
)

var RenameSheetCmd = RenameSheet{
	command: newCommand(),
	from:    "",
	to:      "",
}

var CreateSheetCmd = CreateSheet{
	command: newCommand(),
	title:   "",
}

var LookupCmd = Lookup{
	command: newCommand(),
	title:   "",
	id:      -1,
}

type RenameSheet struct {
	command
	from string
	to   string
}

func (cmd *RenameSheet) Name() string {
	return "rename-sheet"
}

func (cmd *RenameSheet) Description() string {
	return "Renames a worksheet"
}

func (cmd *RenameSheet) Usage() string {
	return "--url <url> [--from <title>] --to <title>"
}

func (cmd *RenameSheet) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] rename-sheet [options] --url <URL> [--from <title>] --to <title>\n", APP)
	fmt.Println()
	fmt.Println("  Renames the worksheet titled --from, or the default worksheet if --from is not specified")
	fmt.Println()

	helpOptions(cmd.FlagSet())
	fmt.Println()
}

func (cmd *RenameSheet) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("rename-sheet")

	flagset.StringVar(&cmd.from, "from", cmd.from, "Current worksheet title. Defaults to the default worksheet")
	flagset.StringVar(&cmd.to, "to", cmd.to, "New worksheet title")

	return flagset
}

func (cmd *RenameSheet) Execute(args ...any) error {
	if err := cmd.validate(getOptions(args)); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.to) == "" {
		return fmt.Errorf("--to is a required option")
	}

	ctx := context.Background()

	s, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	if cmd.from == "" {
		err = s.RenameSheet(ctx, cmd.to)
	} else {
		err = s.RenameWorksheet(ctx, cmd.from, cmd.to)
	}

	if err != nil {
		return err
	}

	infof("Renamed worksheet to '%v'", cmd.to)

	return nil
}

type CreateSheet struct {
	command
	title string
}

func (cmd *CreateSheet) Name() string {
	return "create-sheet"
}

func (cmd *CreateSheet) Description() string {
	return "Adds a new worksheet to a spreadsheet"
}

func (cmd *CreateSheet) Usage() string {
	return "--url <url> --title <title>"
}

func (cmd *CreateSheet) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] create-sheet [options] --url <URL> --title <title>\n", APP)
	fmt.Println()
	fmt.Println("  Adds a worksheet to the spreadsheet and prints the sheet ID assigned to it")
	fmt.Println()

	helpOptions(cmd.FlagSet())
	fmt.Println()
}

func (cmd *CreateSheet) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("create-sheet")

	flagset.StringVar(&cmd.title, "title", cmd.title, "Worksheet title")

	return flagset
}

func (cmd *CreateSheet) Execute(args ...any) error {
	if err := cmd.validate(getOptions(args)); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.title) == "" {
		return fmt.Errorf("--title is a required option")
	}

	ctx := context.Background()

	s, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	id, ok, err := s.CreateSheet(ctx, cmd.title)
	if err != nil {
		return err
	} else if !ok {
		warnf("Created worksheet '%v' but the reply did not include a sheet ID", cmd.title)
		return nil
	}

	fmt.Printf("%v\n", id)

	return nil
}

type Lookup struct {
	command
	title string
	id    int64
}

func (cmd *Lookup) Name() string {
	return "lookup"
}

func (cmd *Lookup) Description() string {
	return "Looks up a worksheet ID by title or a worksheet title by ID"
}

func (cmd *Lookup) Usage() string {
	return "--url <url> --title <title> | --id <sheet ID>"
}

func (cmd *Lookup) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] lookup [options] --url <URL> --title <title> | --id <sheet ID>\n", APP)
	fmt.Println()
	fmt.Println("  Prints the sheet ID for the worksheet title, or the title for the sheet ID")
	fmt.Println()

	helpOptions(cmd.FlagSet())
	fmt.Println()
}

func (cmd *Lookup) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("lookup")

	flagset.StringVar(&cmd.title, "title", cmd.title, "Worksheet title")
	flagset.Int64Var(&cmd.id, "id", cmd.id, "Worksheet sheet ID")

	return flagset
}

func (cmd *Lookup) Execute(args ...any) error {
	if err := cmd.validate(getOptions(args)); err != nil {
		return err
	}

	if (cmd.title == "") == (cmd.id < 0) {
		return fmt.Errorf("requires one of --title or --id")
	}

	ctx := context.Background()

	s, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	if cmd.title != "" {
		id, ok, err := s.SheetID(ctx, cmd.title)
		if err != nil {
			return err
		} else if !ok {
			return fmt.Errorf("no worksheet titled '%v'", cmd.title)
		}

		fmt.Printf("%v\n", id)
	} else {
		title, ok, err := s.SheetTitle(ctx, cmd.id)
		if err != nil {
			return err
		} else if !ok {
			return fmt.Errorf("no worksheet with sheet ID %v", cmd.id)
		}

		fmt.Printf("%v\n", title)
	}

	return nil
}
