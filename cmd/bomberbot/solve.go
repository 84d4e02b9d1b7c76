package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/level"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/service"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// levelName matches the file names exported by the game: mission<M>-level<L>.
var levelName = regexp.MustCompile(`mission(\d+)-level(\d+)`)

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "solve one level file",
		ArgsUsage: "LEVEL",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "demo",
				Usage:   "demo file holding recorded attempts",
				Sources: cli.EnvVars("BOMBERBOT_DEMO"),
			},
			&cli.StringFlag{
				Name:  "mission",
				Usage: "mission number of the demo entry (default: from the file name)",
			},
			&cli.StringFlag{
				Name:  "level-id",
				Usage: "level number of the demo entry (default: from the file name)",
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "give up after this long (0 = no limit)",
				Sources: cli.EnvVars("BOMBERBOT_TIMEOUT"),
			},
			&cli.BoolFlag{
				Name:  "no-grid",
				Usage: "do not print the board",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the report as JSON",
			},
		},
		Action: runSolve,
	}
}

func runSolve(ctx context.Context, cmd *cli.Command) error {
	svc, err := setup(cmd)
	if err != nil {
		return err
	}

	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("solve: missing LEVEL argument")
	}
	lvl, err := level.Load(path)
	if err != nil {
		return err
	}

	req := service.Request{Render: !cmd.Bool("no-grid")}
	if demoPath := cmd.String("demo"); demoPath != "" {
		demo := loadDemo(demoPath, lvl.Name, cmd.String("mission"), cmd.String("level-id"))
		req.Demo = &demo
	}

	rep, err := solveWithTimeout(ctx, svc, lvl, req, cmd.Duration("timeout"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	return rep.WriteText(os.Stdout)
}

// loadDemo finds the demo of the level; a missing demo yields an empty one.
func loadDemo(path, name, mission, id string) level.Demo {
	if m := levelName.FindStringSubmatch(name); m != nil {
		if mission == "" {
			mission = m[1]
		}
		if id == "" {
			id = m[2]
		}
	}

	demo, err := level.LoadDemo(path, mission, id)
	if errors.Is(err, level.ErrDemoNotFound) {
		log.WithFields(log.Fields{"mission": mission, "level": id}).Warn("no demo found")
	} else if err != nil {
		log.WithError(err).Warn("demo ignored")
	}
	return demo
}

func solveWithTimeout(ctx context.Context, svc *service.Service, lvl *level.Level, req service.Request, timeout time.Duration) (*service.Report, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return svc.Solve(ctx, lvl, req)
}
