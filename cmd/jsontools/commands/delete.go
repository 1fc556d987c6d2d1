package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/jsontools/internal/cliutil"
	"github.com/erraggy/jsontools/mutate"
)

// DeleteFlags contains flags for the delete command
type DeleteFlags struct {
	YAML bool
}

// SetupDeleteFlags creates and configures a FlagSet for the delete command.
func SetupDeleteFlags() (*flag.FlagSet, *DeleteFlags) {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	flags := &DeleteFlags{}

	fs.BoolVar(&flags.YAML, "yaml", false, "treat the input document as YAML and convert it to JSON first")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: jsontools delete [flags] <file|-> <path>\n\n")
		cliutil.Writef(output, "Delete the value at a path and print the rewritten document to stdout.\n\n")
		cliutil.Writef(output, "The separator joining the value to its container is removed with it and\n")
		cliutil.Writef(output, "the formatting of every other member is preserved. Paths accept only\n")
		cliutil.Writef(output, "keys and indexes.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  jsontools delete doc.json 'user.password' > out.json\n")
		cliutil.Writef(output, "  cat doc.json | jsontools delete - 'servers.0'\n")
		cliutil.Writef(output, "\nExit Codes:\n")
		cliutil.Writef(output, "  0    The document was rewritten\n")
		cliutil.Writef(output, "  1    The path was invalid or missing, or the input was broken\n")
	}

	return fs, flags
}

// HandleDelete executes the delete command
func HandleDelete(args []string) error {
	fs, flags := SetupDeleteFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("delete command requires a file path (or '-' for stdin) and a path expression")
	}

	doc, err := loadDocument(fs.Arg(0), flags.YAML)
	if err != nil {
		return err
	}

	out, err := mutate.Delete(doc, fs.Arg(1))
	if err != nil {
		return err
	}
	cliutil.WriteDocument(os.Stdout, out)
	return nil
}
