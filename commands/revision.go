package commands

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/uhppoted/uhppoted-sheets/spreadsheet"
)

var RevisionCmd = Revision{
	command: newCommand(),
}

type Revision struct {
	command
}

type version struct {
	revision string
	modified time.Time
}

func (cmd *Revision) Name() string {
	return "revision"
}

func (cmd *Revision) Description() string {
	return "Displays the latest Google Drive revision of a spreadsheet"
}

func (cmd *Revision) Usage() string {
	return "--url <url>"
}

func (cmd *Revision) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] revision [options] --url <URL>\n", APP)
	fmt.Println()
	fmt.Println("  Displays the revision ID and modification time of the latest revision of the spreadsheet.")
	fmt.Println("  OAuth2 credentials require Google Drive authorisation ('authorise --drive').")
	fmt.Println()

	helpOptions(cmd.FlagSet())
	fmt.Println()
}

func (cmd *Revision) FlagSet() *flag.FlagSet {
	return cmd.flagset("revision")
}

func (cmd *Revision) Execute(args ...any) error {
	if err := cmd.validate(getOptions(args)); err != nil {
		return err
	}

	fileId, err := spreadsheet.ParseURL(cmd.url)
	if err != nil {
		return err
	}

	tokens := cmd.tokens
	if tokens == "" {
		tokens = filepath.Join(cmd.workdir, ".google")
	}

	ctx := context.Background()

	client, err := authorize(ctx, cmd.credentials, DRIVE, tokens)
	if err != nil {
		return fmt.Errorf("Google Drive authentication/authorization error (%w)", err)
	}

	gdrive, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("unable to create new Google Drive client (%w)", err)
	}

	v, err := getVersion(ctx, gdrive, fileId)
	if err != nil {
		return err
	}

	fmt.Printf("%v  %v\n", v.revision, v.modified.Format("2006-01-02 15:04:05 MST"))

	return nil
}

func getVersion(ctx context.Context, gdrive *drive.Service, fileId string) (*version, error) {
	page := ""
	revisions := []*drive.Revision{}

	for {
		call := drive.NewRevisionsService(gdrive).List(fileId).
			Fields(googleapi.Field("nextPageToken,revisions(id,modifiedTime)")).
			Context(ctx)

		if page != "" {
			call.PageToken(page)
		}

		response, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve revisions for file ID %s (%w)", fileId, err)
		}

		revisions = append(revisions, response.Revisions...)

		if page = response.NextPageToken; page == "" {
			break
		}
	}

	return latest(fileId, revisions)
}

func latest(fileId string, revisions []*drive.Revision) (*version, error) {
	v := version{
		revision: "",
		modified: time.Time{},
	}

	for _, revision := range revisions {
		datetime, err := time.Parse(time.RFC3339Nano, revision.ModifiedTime)
		if err != nil {
			return nil, err
		}

		if v.modified.Before(datetime) {
			v.revision = revision.Id
			v.modified = datetime
		}
	}

	if v.modified.IsZero() {
		return nil, fmt.Errorf("unable to identify latest revision for file ID %s", fileId)
	}

	return &v, nil
}
