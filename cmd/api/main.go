package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/campusconnect/placement-api/internal/bootstrap"
	"github.com/campusconnect/placement-api/internal/config"
	"github.com/campusconnect/placement-api/internal/pkg/logger"
	"github.com/campusconnect/placement-api/internal/seed"
	"github.com/campusconnect/placement-api/internal/server"
)

// @title Campus Placement API
// @version 1.0
// @description API for the campus placement portal: student profiles, job postings and applications
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email placement-support@example.edu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization, as "Bearer <token>"

func main() {
	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "path to the YAML configuration file",
		Value:   "configs/config.yaml",
		EnvVars: []string{"CONFIG_PATH"},
	}

	app := &cli.App{
		Name:  "placement-api",
		Usage: "campus placement portal backend",
		Flags: []cli.Flag{configFlag},
		// serve is the default when no command is given
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations and exit",
				Action: migrate,
			},
			{
				Name:   "seed",
				Usage:  "create the default admin account and exit",
				Action: seedAdmin,
			},
			{
				Name:   "env",
				Usage:  "list the environment variables that override the configuration file",
				Action: printEnv,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func serve(c *cli.Context) error {
	srv, err := server.NewServer(c.Context, c.String("config"))
	if err != nil {
		return err
	}

	// blocks until a shutdown signal
	if err := srv.Run(c.Context); err != nil {
		return err
	}

	logger.Info().Msg("Application finished gracefully.")
	return nil
}

func migrate(c *cli.Context) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
	if err != nil {
		return err
	}
	return bootstrap.RunMigrations(c.Context, cfg, lgr)
}

func seedAdmin(c *cli.Context) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
	if err != nil {
		return err
	}

	ctx := c.Context
	repos, closeStore, err := bootstrap.SetupDatastore(ctx, cfg, lgr)
	if err != nil {
		return err
	}
	defer closeStore()

	return seed.CreateDefaultAdmin(ctx, repos.Accounts, seed.AdminAccount{
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		FullName: cfg.Seed.AdminName,
	}, lgr)
}

func printEnv(c *cli.Context) error {
	usage, err := config.EnvUsage()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, usage)
	return err
}
