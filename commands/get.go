package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/uhppoted/uhppoted-sheets/address"
	"github.com/uhppoted/uhppoted-sheets/tsv"
	"github.com/uhppoted/uhppoted-sheets/xlsx"
)

var GetCmd = Get{
	command: newCommand(),
	area:    "",
	file:    time.Now().Format("2006-01-02T150405.tsv"),
}

type Get struct {
	command
	area string
	file string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves a range from a Google Sheets worksheet and stores it to a local TSV or XLSX file"
}

func (cmd *Get) Usage() string {
	return "--url <url> --range <range> --file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --url <URL> --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads a Google Sheets range to a TSV file, or to an Excel workbook if the file extension is .xlsx")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-sheets --debug get --credentials "credentials.json" \`)
	fmt.Println(`                                --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                --range "ACL!A2:E" \`)
	fmt.Println(`                                --file "example.tsv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'ACL!A2:E'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV or XLSX file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	if err := cmd.validate(getOptions(args)); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.area) == "" {
		return fmt.Errorf("--range is a required option")
	}

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	ctx := context.Background()

	s, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	rows, err := s.Read(ctx, cmd.area)
	if err != nil {
		return fmt.Errorf("unable to retrieve data from sheet (%w)", err)
	}

	if len(rows) == 0 {
		return fmt.Errorf("no data in spreadsheet/range")
	}

	var store func(io.Writer, [][]string) error = tsv.Write
	if strings.EqualFold(filepath.Ext(cmd.file), ".xlsx") {
		sheet := ""
		if r, err := address.ParseRange(cmd.area); err == nil {
			sheet = r.Sheet
		} else if ix := strings.LastIndex(cmd.area, "!"); ix > 0 {
			sheet = strings.Trim(cmd.area[:ix], "'")
		}

		store = func(w io.Writer, rows [][]string) error {
			return xlsx.Write(w, sheet, rows)
		}
	}

	if err := save(cmd.file, rows, store); err != nil {
		return err
	}

	infof("Retrieved %v rows from %v to file %s", len(rows), cmd.area, cmd.file)

	return nil
}

// save writes to a temporary file and then renames it to the destination.
func save(file string, rows [][]string, store func(io.Writer, [][]string) error) error {
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+APP+"-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := store(tmp, rows); err != nil {
		return fmt.Errorf("error creating file (%w)", err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), file)
}
