package commands

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/uhppoted-sheets/spreadsheet"
)

const APP = "uhppoted-sheets"
const VERSION = "v0.8.11"

const (
	ENV_SPREADSHEET = "SPREADSHEET_ID"
	ENV_CREDENTIALS = "KEY_PATH"
)

type Options struct {
	Debug bool
}

// command holds the options common to all the spreadsheet commands.
type command struct {
	workdir     string
	credentials string
	tokens      string
	url         string
	debug       bool
}

func newCommand() command {
	return command{
		workdir:     DEFAULT_WORKDIR,
		credentials: "",
		tokens:      "",
		url:         "",
		debug:       false,
	}
}

// newService is replaced in tests.
var newService = func(ctx context.Context, credentials string, tokens string) (spreadsheet.Service, error) {
	client, err := authorize(ctx, credentials, SHEETS, tokens)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%w)", err)
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	return spreadsheet.NewGoogleService(google), nil
}

func (cmd *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (tokens, revisions, etc)")
	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, fmt.Sprintf("Path for the 'credentials.json' file. Defaults to $%v or %v", ENV_CREDENTIALS, DEFAULT_CREDENTIALS))
	flagset.StringVar(&cmd.tokens, "tokens", cmd.tokens, "Directory for the authorisation tokens. Defaults to <workdir>/.google")
	flagset.StringVar(&cmd.url, "url", cmd.url, fmt.Sprintf("Spreadsheet URL or ID. Defaults to $%v", ENV_SPREADSHEET))

	return flagset
}

// validate fills in unset options from the environment and checks the common
// required options.
func (cmd *command) validate(options *Options) error {
	if options != nil {
		cmd.debug = options.Debug
	}

	if strings.TrimSpace(cmd.credentials) == "" {
		if v := os.Getenv(ENV_CREDENTIALS); v != "" {
			cmd.credentials = v
		} else {
			cmd.credentials = DEFAULT_CREDENTIALS
		}
	}

	if strings.TrimSpace(cmd.url) == "" {
		cmd.url = os.Getenv(ENV_SPREADSHEET)
	}

	if strings.TrimSpace(cmd.url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	if _, err := spreadsheet.ParseURL(cmd.url); err != nil {
		return err
	}

	return nil
}

func (cmd *command) connect(ctx context.Context) (*spreadsheet.Spreadsheet, error) {
	id, err := spreadsheet.ParseURL(cmd.url)
	if err != nil {
		return nil, err
	}

	tokens := cmd.tokens
	if tokens == "" {
		tokens = filepath.Join(cmd.workdir, ".google")
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  credentials:%s  tokens:%s", id, cmd.credentials, tokens)
	}

	service, err := newService(ctx, cmd.credentials, tokens)
	if err != nil {
		return nil, err
	}

	return spreadsheet.NewSpreadsheet(service, id), nil
}

func getOptions(args []any) *Options {
	if len(args) > 0 {
		if options, ok := args[0].(*Options); ok {
			return options
		}
	}

	return &Options{}
}

func helpOptions(flagset *flag.FlagSet) {
	count := 0
	flag.VisitAll(func(f *flag.Flag) {
		count++
	})

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	if count > 0 {
		fmt.Println()
		fmt.Println("  Options:")
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
		})
	}
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
