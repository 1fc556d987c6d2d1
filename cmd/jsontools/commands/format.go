package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/jsontools/internal/cliutil"
	"github.com/erraggy/jsontools/pretty"
)

// FormatFlags contains flags for the format command
type FormatFlags struct {
	Ugly     bool
	Indent   int
	SortKeys bool
	Width    int
	YAML     bool
}

// SetupFormatFlags creates and configures a FlagSet for the format command.
func SetupFormatFlags() (*flag.FlagSet, *FormatFlags) {
	fs := flag.NewFlagSet("format", flag.ContinueOnError)
	flags := &FormatFlags{}

	fs.BoolVar(&flags.Ugly, "u", false, "emit compact output instead of indented")
	fs.BoolVar(&flags.Ugly, "ugly", false, "emit compact output instead of indented")
	fs.IntVar(&flags.Indent, "indent", 2, "number of spaces per indentation level")
	fs.BoolVar(&flags.SortKeys, "sort-keys", false, "order object members by key")
	fs.IntVar(&flags.Width, "width", 0, "collapse containers that fit within this column (0 disables)")
	fs.BoolVar(&flags.YAML, "yaml", false, "treat the input document as YAML and convert it to JSON first")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: jsontools format [flags] <file|->\n\n")
		cliutil.Writef(output, "Reformat a JSON document without parsing it into a tree.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  jsontools format doc.json\n")
		cliutil.Writef(output, "  jsontools format --ugly doc.json\n")
		cliutil.Writef(output, "  jsontools format --sort-keys --indent 4 doc.json\n")
		cliutil.Writef(output, "  jsontools format --yaml config.yaml\n")
	}

	return fs, flags
}

// HandleFormat executes the format command
func HandleFormat(args []string) error {
	fs, flags := SetupFormatFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("format command requires exactly one file path or '-' for stdin")
	}

	doc, err := loadDocument(fs.Arg(0), flags.YAML)
	if err != nil {
		return err
	}

	var out string
	if flags.Ugly {
		out = pretty.Ugly(doc)
	} else {
		indent := ""
		for range flags.Indent {
			indent += " "
		}
		out = pretty.PrettyOptions(doc, &pretty.Options{
			Indent:   indent,
			SortKeys: flags.SortKeys,
			Width:    flags.Width,
		})
	}
	cliutil.WriteDocument(os.Stdout, out)
	return nil
}
