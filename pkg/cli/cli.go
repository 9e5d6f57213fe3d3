package cli

import (
	"context"

	"github.com/secmon-lab/curbside/pkg/cli/config"
	"github.com/secmon-lab/curbside/pkg/utils/errutil"
	"github.com/secmon-lab/curbside/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Run parses args and executes the selected subcommand. A failed command is
// logged with its error values before it is returned.
func Run(ctx context.Context, args []string, version string) error {
	var loggerCfg config.Logger
	closeLog := func() {}

	app := &cli.Command{
		Name:    "curbside",
		Usage:   "Household trash and recycling chore tracker",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closeLog = f

			logging.Default().Debug("Logger configured", "logger", loggerCfg, "version", version)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			closeLog()
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdMigrate(),
			cmdExport(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return errutil.Handle(ctx, err, "curbside command failed")
	}

	return nil
}
