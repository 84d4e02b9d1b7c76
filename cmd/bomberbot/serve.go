package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/api"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/transport/mcp"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func levelsFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "levels",
		Usage:   "directory of level files served by name",
		Sources: cli.EnvVars("BOMBERBOT_LEVELS"),
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "listen address",
				Value:   ":8080",
				Sources: cli.EnvVars("BOMBERBOT_ADDR", "PORT"),
			},
			levelsFlag(),
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "per-request solve limit (0 = no limit)",
				Value:   30 * time.Second,
				Sources: cli.EnvVars("BOMBERBOT_TIMEOUT"),
			},
		},
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	svc, err := setup(cmd)
	if err != nil {
		return err
	}

	handler := api.NewServer(svc, api.Config{
		LevelsDir: cmd.String("levels"),
		Timeout:   cmd.Duration("timeout"),
		Logger:    log.StandardLogger(),
	})
	srv := &http.Server{
		Addr:              cmd.String("addr"),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("HTTP server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info("server stopped")
	return nil
}

func mcpCommand() *cli.Command {
	return &cli.Command{
		Name:   "mcp",
		Usage:  "serve MCP tools over stdio",
		Flags:  []cli.Flag{levelsFlag()},
		Action: runMCP,
	}
}

func runMCP(ctx context.Context, cmd *cli.Command) error {
	svc, err := setup(cmd)
	if err != nil {
		return err
	}
	return mcp.NewServer(svc, cmd.String("levels"), log.StandardLogger()).ServeStdio()
}
