// Command roster is the CLI entrypoint for the hospital-unit staff
// roster solver.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/carerota/roster/internal/cli"
	"github.com/carerota/roster/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "roster:", err)
		os.Exit(1)
	}
}

func run() error {
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("ROSTER_LOG_USECASES") != "" {
		observer = service.NewLogUseCaseObserver(slog.NewTextHandler(os.Stderr, nil))
	}

	app := &cli.App{
		Roster:        service.NewRosterService(observer),
		IsInteractive: isatty.IsTerminal(os.Stdout.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}
