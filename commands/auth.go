package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"
)

const (
	SHEETS = sheets.SpreadsheetsScope
	DRIVE  = drive.DriveMetadataReadonlyScope
)

// authorize returns an HTTP client authorised for the scope. Service account
// keys are used directly; OAuth2 client credentials use the token previously
// saved by the 'authorise' command.
func authorize(ctx context.Context, credentials, scope, tokens string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	if isServiceAccount(b) {
		config, err := google.JWTConfigFromJSON(b, scope)
		if err != nil {
			return nil, err
		}

		return config.Client(ctx), nil
	}

	config, err := google.ConfigFromJSON(b, scope)
	if err != nil {
		return nil, err
	}

	file := tokenFile(credentials, scope, tokens)
	token, err := tokenFromFile(file)
	if err != nil {
		return nil, fmt.Errorf("missing/invalid authorisation token %v - run '%v authorise' (%w)", file, APP, err)
	}

	return config.Client(ctx, token), nil
}

func isServiceAccount(credentials []byte) bool {
	key := struct {
		Type string `json:"type"`
	}{}

	if err := json.Unmarshal(credentials, &key); err != nil {
		return false
	}

	return key.Type == "service_account"
}

func tokenFile(credentials, scope, dir string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	switch {
	case strings.HasPrefix(scope, SHEETS):
		return filepath.Join(dir, fmt.Sprintf("%s.sheets", name))

	case strings.HasPrefix(scope, DRIVE):
		return filepath.Join(dir, fmt.Sprintf("%s.drive", name))

	default:
		return filepath.Join(dir, fmt.Sprintf("%s.tokens", name))
	}
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}

func saveToken(file string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(file), 0770); err != nil {
		return err
	}

	f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to save OAuth2 token (%w)", err)
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
