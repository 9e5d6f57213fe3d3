package cli

import (
	"context"

	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/repository/firestore"
	"github.com/secmon-lab/curbside/pkg/repository/sqlite"
	"github.com/secmon-lab/curbside/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdMigrate() *cli.Command {
	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Migrate database schema and indexes",
		Commands: []*cli.Command{
			cmdMigrateFirestore(),
			cmdMigrateSQLite(),
		},
	}
}

func cmdMigrateFirestore() *cli.Command {
	var projectID string
	var databaseID string
	var collectionPrefix string
	var dryRun bool

	return &cli.Command{
		Name:  "firestore",
		Usage: "Migrate Firestore indexes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "firestore-project-id",
				Usage:       "Firestore Project ID (required)",
				Required:    true,
				Sources:     cli.EnvVars("CURBSIDE_FIRESTORE_PROJECT_ID"),
				Destination: &projectID,
			},
			&cli.StringFlag{
				Name:        "firestore-database-id",
				Usage:       "Firestore Database ID",
				Sources:     cli.EnvVars("CURBSIDE_FIRESTORE_DATABASE_ID"),
				Destination: &databaseID,
			},
			&cli.StringFlag{
				Name:        "firestore-collection-prefix",
				Usage:       "Prefix for Firestore collection names",
				Sources:     cli.EnvVars("CURBSIDE_FIRESTORE_COLLECTION_PREFIX"),
				Destination: &collectionPrefix,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "Preview changes without applying",
				Destination: &dryRun,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			logger.Info("Migrate configuration",
				"projectID", projectID,
				"databaseID", databaseID,
				"collectionPrefix", collectionPrefix,
				"dryRun", dryRun)

			indexConfig := getIndexConfig(collectionPrefix)

			client, err := fireconf.NewClient(ctx, projectID, databaseID)
			if err != nil {
				return goerr.Wrap(err, "failed to create fireconf client")
			}
			defer func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close fireconf client", "error", err.Error())
				}
			}()

			if dryRun {
				logger.Info("Dry run mode - previewing changes")
				plan, err := client.GetMigrationPlan(ctx, indexConfig)
				if err != nil {
					return goerr.Wrap(err, "failed to create migration plan")
				}

				if len(plan.Steps) == 0 {
					logger.Info("No changes required")
					return nil
				}

				for _, step := range plan.Steps {
					logger.Info("Migration step",
						"collection", step.Collection,
						"operation", step.Operation,
						"description", step.Description,
						"destructive", step.Destructive)
				}
				return nil
			}

			logger.Info("Applying migrations")
			if err := client.Migrate(ctx, indexConfig); err != nil {
				return goerr.Wrap(err, "failed to apply migrations")
			}
			logger.Info("Migrations applied successfully")

			return nil
		},
	}
}

func cmdMigrateSQLite() *cli.Command {
	var path string

	return &cli.Command{
		Name:  "sqlite",
		Usage: "Apply SQLite schema migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "sqlite-path",
				Usage:       "SQLite database file path",
				Value:       "./data/curbside.db",
				Sources:     cli.EnvVars("CURBSIDE_SQLITE_PATH"),
				Destination: &path,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sqlite.Migrate(path); err != nil {
				return err
			}
			logging.Default().Info("SQLite migrations applied", "path", path)
			return nil
		},
	}
}

// getIndexConfig returns the Firestore index configuration
func getIndexConfig(prefix string) *fireconf.Config {
	return &fireconf.Config{
		Collections: []fireconf.Collection{
			{
				Name: firestore.CollectionName(prefix, firestore.EntryCollection),
				Indexes: []fireconf.Index{
					// FindByDayAction / SetApproved: Date ==, Action ==, ordered by CreatedAt
					{
						Fields: []fireconf.IndexField{
							{Path: "Date", Order: fireconf.OrderAscending},
							{Path: "Action", Order: fireconf.OrderAscending},
							{Path: "CreatedAt", Order: fireconf.OrderAscending},
						},
					},
				},
			},
		},
	}
}
