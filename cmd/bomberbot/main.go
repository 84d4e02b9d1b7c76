// Command bomberbot solves Bomberbot levels and grades recorded attempts.
//
// Usage:
//
//	bomberbot solve levels/mission1-level3.json --demo levels/demo.json
//	bomberbot batch levels --jobs 4
//	bomberbot serve --addr :8080 --levels levels
//	bomberbot mcp --levels levels
//
// Flags may also be set through BOMBERBOT_* environment variables, which are
// read from a .env file in the working directory when present.
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/astar"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/service"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// Version is the application version.
const Version = "1.0.0"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Warn("error loading .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		log.WithError(err).Error("bomberbot failed")
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "bomberbot",
		Usage:   "solve Bomberbot levels and generate hints",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log at debug level",
				Sources: cli.EnvVars("BOMBERBOT_DEBUG"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "text or json",
				Value:   "text",
				Sources: cli.EnvVars("BOMBERBOT_LOG_FORMAT"),
			},
			&cli.BoolFlag{
				Name:    "reset-bricks",
				Usage:   "restore destroyed bricks before every goal order",
				Value:   true,
				Sources: cli.EnvVars("BOMBERBOT_RESET_BRICKS"),
			},
			&cli.StringFlag{
				Name:    "tie-break",
				Usage:   "heuristic tie-break term: cross or legacy",
				Value:   "cross",
				Sources: cli.EnvVars("BOMBERBOT_TIE_BREAK"),
			},
			&cli.IntFlag{
				Name:    "max-goals",
				Usage:   "largest goal count accepted by the permutation search",
				Value:   9,
				Sources: cli.EnvVars("BOMBERBOT_MAX_GOALS"),
			},
		},
		Commands: []*cli.Command{
			solveCommand(),
			batchCommand(),
			serveCommand(),
			mcpCommand(),
		},
	}
}

// setup configures the standard logger from the global flags and builds the service.
func setup(cmd *cli.Command) (*service.Service, error) {
	if cmd.Bool("debug") {
		log.SetLevel(log.DebugLevel)
	}
	if cmd.String("log-format") == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	// stdout carries reports and the MCP protocol.
	log.SetOutput(os.Stderr)

	tieBreak, err := astar.ParseTieBreak(cmd.String("tie-break"))
	if err != nil {
		return nil, err
	}

	return service.New(
		service.WithLogger(log.StandardLogger()),
		service.WithResetBricks(cmd.Bool("reset-bricks")),
		service.WithMaxGoals(int(cmd.Int("max-goals"))),
		service.WithTieBreak(tieBreak),
	), nil
}
