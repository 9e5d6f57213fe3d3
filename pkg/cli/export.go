package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/cli/config"
	"github.com/secmon-lab/curbside/pkg/service/export"
	"github.com/secmon-lab/curbside/pkg/usecase"
	"github.com/secmon-lab/curbside/pkg/utils/logging"
	"github.com/secmon-lab/curbside/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdExport() *cli.Command {
	var output string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output destination: file path, '-' for stdout, or gs://bucket/object",
			Value:       export.Stdout,
			Sources:     cli.EnvVars("CURBSIDE_EXPORT_OUTPUT"),
			Destination: &output,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "export",
		Usage: "Export all entries and counters as JSON",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, "repository", repo)

			snapshot, err := usecase.New(repo).Export(ctx)
			if err != nil {
				return err
			}

			if err := export.Write(ctx, output, os.Stdout, snapshot); err != nil {
				return err
			}

			logging.Default().Info("Export completed",
				"output", output,
				"entries", len(snapshot.Entries),
				"counters", len(snapshot.Counters))
			return nil
		},
	}
}
