package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/jsontools/internal/cliutil"
	"github.com/erraggy/jsontools/mutate"
)

// SetFlags contains flags for the set command
type SetFlags struct {
	OverwriteOnly bool
	YAML          bool
}

// SetupSetFlags creates and configures a FlagSet for the set command.
func SetupSetFlags() (*flag.FlagSet, *SetFlags) {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	flags := &SetFlags{}

	fs.BoolVar(&flags.OverwriteOnly, "overwrite-only", false, "fail when the path does not resolve instead of creating intermediates")
	fs.BoolVar(&flags.YAML, "yaml", false, "treat the input document as YAML and convert it to JSON first")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: jsontools set [flags] <file|-> <path> <value>\n\n")
		cliutil.Writef(output, "Set the value at a path and print the rewritten document to stdout.\n\n")
		cliutil.Writef(output, "The value is spliced verbatim when it is valid JSON; anything else is\n")
		cliutil.Writef(output, "encoded as a JSON string. Paths accept only keys and indexes.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  jsontools set doc.json 'user.age' 38\n")
		cliutil.Writef(output, "  jsontools set doc.json 'user.name' 'Tom Anderson'\n")
		cliutil.Writef(output, "  jsontools set doc.json 'servers.2' '{\"host\":\"c\"}' > out.json\n")
		cliutil.Writef(output, "\nExit Codes:\n")
		cliutil.Writef(output, "  0    The document was rewritten\n")
		cliutil.Writef(output, "  1    The path was invalid, missing (with --overwrite-only), or the input was broken\n")
	}

	return fs, flags
}

// HandleSet executes the set command
func HandleSet(args []string) error {
	fs, flags := SetupSetFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 3 {
		fs.Usage()
		return fmt.Errorf("set command requires a file path (or '-' for stdin), a path expression, and a value")
	}

	doc, err := loadDocument(fs.Arg(0), flags.YAML)
	if err != nil {
		return err
	}

	var out string
	if flags.OverwriteOnly {
		out, err = mutate.SetOverwrite(doc, fs.Arg(1), fs.Arg(2))
	} else {
		out, err = mutate.Set(doc, fs.Arg(1), fs.Arg(2))
	}
	if err != nil {
		return err
	}
	cliutil.WriteDocument(os.Stdout, out)
	return nil
}
