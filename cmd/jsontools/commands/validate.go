package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/jsontools/internal/cliutil"
	"github.com/erraggy/jsontools/query"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Quiet bool
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no output, exit code reports validity")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no output, exit code reports validity")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: jsontools validate [flags] <file|->\n\n")
		cliutil.Writef(output, "Strictly validate a JSON document.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  jsontools validate doc.json\n")
		cliutil.Writef(output, "  cat doc.json | jsontools validate -q -\n")
		cliutil.Writef(output, "\nExit Codes:\n")
		cliutil.Writef(output, "  0    The document is valid JSON\n")
		cliutil.Writef(output, "  1    The document is invalid or the command failed\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path or '-' for stdin")
	}

	doc, err := loadDocument(fs.Arg(0), false)
	if err != nil {
		return err
	}

	if !query.Valid(doc) {
		if !flags.Quiet {
			cliutil.Writef(os.Stderr, "invalid JSON\n")
		}
		os.Exit(1)
	}
	if !flags.Quiet {
		cliutil.Writef(os.Stdout, "valid\n")
	}
	return nil
}
