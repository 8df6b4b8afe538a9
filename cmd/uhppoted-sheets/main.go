package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	uhppoted "github.com/uhppoted/uhppoted-lib/command"

	"github.com/uhppoted/uhppoted-sheets/commands"
)

var cli = []uhppoted.Command{
	&commands.VersionCmd,
	&commands.AuthoriseCmd,
	&commands.GetCmd,
	&commands.PutCmd,
	&commands.AppendCmd,
	&commands.WriteRowCmd,
	&commands.WriteColumnCmd,
	&commands.ClearCmd,
	&commands.RenameSheetCmd,
	&commands.CreateSheetCmd,
	&commands.LookupCmd,
	&commands.FormatCellCmd,
	&commands.RevisionCmd,
}

var options = commands.Options{
	Debug: false,
}

var env = ".env"

var help = uhppoted.NewHelp(commands.APP, cli, nil)

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.StringVar(&env, "env", env, "File with SPREADSHEET_ID and KEY_PATH environment variable defaults")
	flag.Parse()

	// ... environment variables take precedence over the .env file
	if err := godotenv.Load(env); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("\nError loading %v (%v)\n\n", env, err)
		os.Exit(1)
	}

	cmd, err := uhppoted.Parse(cli, nil, help)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		help.Execute()
		os.Exit(1)
	}

	if err = cmd.Execute(&options); err != nil {
		log.Fatalf("%-5s %v", "ERROR", err)
	}
}
