package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Black-And-White-Club/fairway/app"
	"github.com/Black-And-White-Club/fairway/app/modules/auth"
	authdomain "github.com/Black-And-White-Club/fairway/app/modules/auth/domain"
	"github.com/Black-And-White-Club/fairway/app/shared/attr"
	"github.com/Black-And-White-Club/fairway/config"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "fairway",
		Usage: "club round logging and performance statistics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"CONFIG_FILE"},
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			tokenCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API, event handlers and digest queue",
		Action: func(c *cli.Context) error {
			ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer cancel()

			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			application, err := app.NewApp(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			runErr := application.Run(ctx)

			closeCtx, closeCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer closeCancel()
			if err := application.Close(closeCtx); err != nil {
				application.Observability.Logger.Error("Shutdown finished with errors", attr.Error(err))
			}
			return runErr
		},
	}
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "issue a bearer token for a club member",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "player", Required: true, Usage: "player id (token subject)"},
			&cli.StringFlag{Name: "club", Required: true, Usage: "club id"},
			&cli.StringFlag{Name: "role", Value: string(authdomain.RolePlayer), Usage: "viewer, player, editor or admin"},
			&cli.DurationFlag{Name: "ttl", Value: 30 * 24 * time.Hour, Usage: "token lifetime"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			role := authdomain.Role(c.String("role"))
			if !role.IsValid() {
				return fmt.Errorf("unknown role %q", role)
			}

			module := auth.NewModule(cfg, slog.New(slog.DiscardHandler))
			token, err := module.IssueToken(c.String("player"), c.String("club"), role, c.Duration("ttl"))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, token)
			return nil
		},
	}
}
