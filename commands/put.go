package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/uhppoted/uhppoted-sheets/tsv"
)

var PutCmd = Put{
	command:  newCommand(),
	area:     "",
	file:     "",
	encoding: "",
	append:   false,
}

var AppendCmd = Put{
	command:  newCommand(),
	area:     "",
	file:     "",
	encoding: "",
	append:   true,
}

// Put uploads a TSV file to a worksheet range, either overwriting the range
// ('put') or inserting the rows after the existing data ('append').
type Put struct {
	command
	area     string
	file     string
	encoding string
	append   bool
}

func (cmd *Put) Name() string {
	if cmd.append {
		return "append"
	}

	return "put"
}

func (cmd *Put) Description() string {
	if cmd.append {
		return "Appends the rows in a TSV file to a Google Sheets worksheet"
	}

	return "Uploads a TSV file to a Google Sheets worksheet"
}

func (cmd *Put) Usage() string {
	return "--url <url> --range <range> --file <file>"
}

func (cmd *Put) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] %s [options] --url <URL> --range <range> --file <file>\n", APP, cmd.Name())
	fmt.Println()
	if cmd.append {
		fmt.Println("  Appends the rows in a TSV file to the table in a Google Sheets range, inserting new rows after the existing data")
	} else {
		fmt.Println("  Uploads a TSV file to a Google Sheets range, overwriting the existing values")
	}
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    uhppoted-sheets --debug %s --credentials \"credentials.json\" \\\n", cmd.Name())
	fmt.Println(`                           --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                           --range "ACL!A2:E" \`)
	fmt.Println(`                           --file "example.tsv"`)
	fmt.Println()
}

func (cmd *Put) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset(cmd.Name())

	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'ACL!A2:E'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file")
	flagset.StringVar(&cmd.encoding, "encoding", cmd.encoding, "TSV file encoding (utf-8, windows-1252, iso-8859-1, iso-8859-15, macintosh). Defaults to utf-8")

	return flagset
}

func (cmd *Put) Execute(args ...any) error {
	if err := cmd.validate(getOptions(args)); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.area) == "" {
		return fmt.Errorf("--range is a required option")
	}

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	f, err := os.Open(cmd.file)
	if err != nil {
		return err
	}

	defer f.Close()

	rows, err := tsv.Read(f, cmd.encoding)
	if err != nil {
		return fmt.Errorf("invalid TSV file (%w)", err)
	}

	ctx := context.Background()

	s, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	if cmd.append {
		if err := s.Append(ctx, cmd.area, rows); err != nil {
			return err
		}

		infof("Appended %v rows from TSV file %v to Google Sheets %v", len(rows), cmd.file, cmd.area)
	} else {
		if err := s.Write(ctx, cmd.area, rows); err != nil {
			return err
		}

		infof("Uploaded TSV file %v to Google Sheets %v", cmd.file, cmd.area)
	}

	return nil
}
