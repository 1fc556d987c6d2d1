package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/jsontools/internal/cliutil"
	"github.com/erraggy/jsontools/pretty"
	"github.com/erraggy/jsontools/query"
)

// GetFlags contains flags for the get command
type GetFlags struct {
	Pretty bool
	Ugly   bool
	YAML   bool
	Raw    bool
	Quiet  bool
}

// SetupGetFlags creates and configures a FlagSet for the get command.
// Returns the FlagSet and a GetFlags struct with bound flag variables.
func SetupGetFlags() (*flag.FlagSet, *GetFlags) {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	flags := &GetFlags{}

	fs.BoolVar(&flags.Pretty, "p", false, "indent the result")
	fs.BoolVar(&flags.Pretty, "pretty", false, "indent the result")
	fs.BoolVar(&flags.Ugly, "u", false, "compact the result")
	fs.BoolVar(&flags.Ugly, "ugly", false, "compact the result")
	fs.BoolVar(&flags.YAML, "yaml", false, "treat the input document as YAML and convert it to JSON first")
	fs.BoolVar(&flags.Raw, "raw", false, "print string results decoded, without quotes")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no output, exit code reports existence")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no output, exit code reports existence")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: jsontools get [flags] <file|-> <path>\n\n")
		cliutil.Writef(output, "Evaluate a path expression against a JSON document.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  jsontools get api.json 'paths.#'\n")
		cliutil.Writef(output, "  jsontools get --raw doc.json 'user.name'\n")
		cliutil.Writef(output, "  jsontools get -p doc.json 'users.#(age>45)#'\n")
		cliutil.Writef(output, "  cat doc.json | jsontools get - 'a.b|@reverse'\n")
		cliutil.Writef(output, "\nPath Syntax:\n")
		cliutil.Writef(output, "  Dot-separated keys and indexes, '#' selections, '#(...)' queries,\n")
		cliutil.Writef(output, "  '[...]'/'{...}' multipaths, '@name' modifiers, '|' pipes, and a '..'\n")
		cliutil.Writef(output, "  prefix for JSON Lines input. Escape '.' in keys with a backslash.\n")
		cliutil.Writef(output, "\nExit Codes:\n")
		cliutil.Writef(output, "  0    The path resolved to a value\n")
		cliutil.Writef(output, "  1    The path did not resolve or the command failed\n")
	}

	return fs, flags
}

// HandleGet executes the get command
func HandleGet(args []string) error {
	fs, flags := SetupGetFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("get command requires a file path (or '-' for stdin) and a path expression")
	}

	doc, err := loadDocument(fs.Arg(0), flags.YAML)
	if err != nil {
		return err
	}

	res := query.Get(doc, fs.Arg(1))
	if !res.Exists() {
		if !flags.Quiet {
			cliutil.Writef(os.Stderr, "path does not resolve: %s\n", fs.Arg(1))
		}
		os.Exit(1)
	}
	if flags.Quiet {
		return nil
	}

	out := res.Raw
	switch {
	case flags.Raw && res.Kind == query.String:
		out = res.Str
	case flags.Pretty:
		out = pretty.Pretty(out)
	case flags.Ugly:
		out = pretty.Ugly(out)
	}
	cliutil.WriteDocument(os.Stdout, out)
	return nil
}
