package cmd

import (
	"context"
	"log"
	"os"

	"github.com/lunarbrew/go-cafe/app/configs"
	"github.com/lunarbrew/go-cafe/app/db/seeders"
	"github.com/lunarbrew/go-cafe/app/models/migrations"
	"github.com/lunarbrew/go-cafe/app/repositories"
	"github.com/lunarbrew/go-cafe/app/services"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed the catalog with sample café data and a default admin account",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					log.Println("✅ Seeding complete")
					return nil
				},
			},
			{
				Name:  "publish",
				Usage: "Write the active catalog to the static menu snapshot",
				Action: func(ctx context.Context, c *cli.Command) error {
					env := configs.LoadEnv()
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					source := services.NewCatalogSource(
						repositories.NewCategoryRepository(db),
						repositories.NewMenuItemRepository(db),
						repositories.NewSizeRepository(db),
						repositories.NewAttributeRepository(db),
					)
					publisher := services.NewPublishService(source, env.StaticDir, env.BuildCommit)
					result, err := publisher.Publish(ctx)
					if err != nil {
						return err
					}
					log.Printf("✅ Publish complete: %s (%d bytes, version %s)", result.Path, result.Bytes, result.Version)
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {

					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
