package commands

import (
	"flag"
	"fmt"
)

var VersionCmd = Version{}

// Version prints the uhppoted-sheets release.
type Version struct {
}

func (cmd *Version) Name() string {
	return "version"
}

func (cmd *Version) Description() string {
	return fmt.Sprintf("Prints the %s release", APP)
}

func (cmd *Version) Usage() string {
	return ""
}

func (cmd *Version) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s version\n", APP)
	fmt.Println()
	fmt.Printf("  Prints the %s release e.g. %s\n", APP, VERSION)
	fmt.Println()
}

func (cmd *Version) FlagSet() *flag.FlagSet {
	return flag.NewFlagSet("version", flag.ExitOnError)
}

func (cmd *Version) Execute(args ...any) error {
	fmt.Printf("%s %s\n", APP, VERSION)

	return nil
}
