package commands

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/erraggy/jsontools/internal/cliutil"
	"github.com/erraggy/jsontools/internal/httpserver"
	"github.com/erraggy/jsontools/query"
)

// ServeFlags contains flags for the serve command
type ServeFlags struct {
	Addr    string
	Verbose bool
}

// SetupServeFlags creates and configures a FlagSet for the serve command.
func SetupServeFlags() (*flag.FlagSet, *ServeFlags) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	flags := &ServeFlags{}

	fs.StringVar(&flags.Addr, "addr", ":8080", "listen address")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log every request")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: jsontools serve [flags]\n\n")
		cliutil.Writef(output, "Start the HTTP API server.\n\n")
		cliutil.Writef(output, "Endpoints (POST, JSON body with json/path/value fields):\n")
		cliutil.Writef(output, "  /api/v1/get  /api/v1/set  /api/v1/delete  /api/v1/validate  /api/v1/format\n")
		cliutil.Writef(output, "  GET /api/v1/version\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  jsontools serve --addr :8080\n")
		cliutil.Writef(output, "  curl -s localhost:8080/api/v1/get -d '{\"json\":\"{\\\"a\\\":1}\",\"path\":\"a\"}'\n")
	}

	return fs, flags
}

// HandleServe executes the serve command
func HandleServe(args []string) error {
	fs, flags := SetupServeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	var logger query.Logger = query.NopLogger{}
	if flags.Verbose {
		level := slog.LevelDebug
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		logger = query.NewSlogAdapter(slog.New(handler))
	}

	srv := httpserver.New(flags.Addr, logger)
	return srv.ListenAndServe()
}
