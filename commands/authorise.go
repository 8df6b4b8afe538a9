package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/net/context"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var AuthoriseCmd = Authorise{
	command: newCommand(),
	drive:   false,
}

type Authorise struct {
	command
	drive bool
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises uhppoted-sheets to access Google Sheets using OAuth2 client credentials"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options] --credentials <file>\n", APP)
	fmt.Println()
	fmt.Println("  Authorises access to Google Sheets (and optionally Google Drive) and saves the OAuth2 token")
	fmt.Println("  to the tokens directory. Service account credentials do not need to be authorised.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-sheets authorise --credentials "credentials.json"`)
	fmt.Println(`    uhppoted-sheets authorise --credentials "credentials.json" --drive`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("authorise", flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (tokens, revisions, etc)")
	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&cmd.tokens, "tokens", cmd.tokens, "Directory for the authorisation tokens. Defaults to <workdir>/.google")
	flagset.BoolVar(&cmd.drive, "drive", cmd.drive, "Authorises read-only access to the Google Drive file metadata (required for 'revision')")

	return flagset
}

func (cmd *Authorise) Execute(args ...any) error {
	cmd.debug = getOptions(args).Debug

	if cmd.credentials == "" {
		if v := os.Getenv(ENV_CREDENTIALS); v != "" {
			cmd.credentials = v
		} else {
			cmd.credentials = DEFAULT_CREDENTIALS
		}
	}

	b, err := os.ReadFile(cmd.credentials)
	if err != nil {
		return err
	}

	if isServiceAccount(b) {
		infof("%v is a service account key and does not require authorisation", cmd.credentials)
		return nil
	}

	scope := SHEETS
	if cmd.drive {
		scope = DRIVE
	}

	config, err := google.ConfigFromJSON(b, scope)
	if err != nil {
		return fmt.Errorf("invalid credentials file %v (%w)", cmd.credentials, err)
	}

	tokens := cmd.tokens
	if tokens == "" {
		tokens = filepath.Join(cmd.workdir, ".google")
	}

	ctx := context.Background()

	token, err := getTokenFromWeb(ctx, config, os.Stdin)
	if err != nil {
		return fmt.Errorf("authorisation error (%w)", err)
	}

	file := tokenFile(cmd.credentials, scope, tokens)
	if err := saveToken(file, token); err != nil {
		return err
	}

	infof("Saved OAuth2 token to %v", file)

	return nil
}

// getTokenFromWeb prompts for the authorization code from the consent page and
// exchanges it for an OAuth2 token.
func getTokenFromWeb(ctx context.Context, config *oauth2.Config, in io.Reader) (*oauth2.Token, error) {
	url := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)

	fmt.Printf("Go to the following link in your browser then type the authorization code:\n%v\n", url)

	var code string
	if _, err := fmt.Fscan(in, &code); err != nil {
		return nil, fmt.Errorf("unable to read authorization code (%w)", err)
	}

	return config.Exchange(ctx, code)
}
