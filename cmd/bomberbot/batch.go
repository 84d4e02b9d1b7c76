package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/level"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/service"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func batchCommand() *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "solve every level file of a directory",
		ArgsUsage: "DIR",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "levels solved in parallel",
				Value:   4,
				Sources: cli.EnvVars("BOMBERBOT_JOBS"),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "per-level time limit (0 = no limit)",
				Sources: cli.EnvVars("BOMBERBOT_TIMEOUT"),
			},
		},
		Action: runBatch,
	}
}

// batchResult is one row of the batch summary.
type batchResult struct {
	path   string
	report *service.Report
	err    error
}

func runBatch(ctx context.Context, cmd *cli.Command) error {
	svc, err := setup(cmd)
	if err != nil {
		return err
	}

	dir := cmd.Args().First()
	if dir == "" {
		return fmt.Errorf("batch: missing DIR argument")
	}
	paths, err := level.List(dir)
	if err != nil {
		return err
	}

	results := solveAll(ctx, svc, paths, int(cmd.Int("jobs")), cmd.Duration("timeout"))
	failed := writeSummary(os.Stdout, results)
	if failed > 0 {
		return fmt.Errorf("batch: %d of %d levels failed", failed, len(results))
	}
	return nil
}

// solveAll solves paths with at most jobs workers. Each level builds its own grid.
func solveAll(ctx context.Context, svc *service.Service, paths []string, jobs int, timeout time.Duration) []batchResult {
	results := make([]batchResult, len(paths))

	var eg errgroup.Group
	if jobs > 0 {
		eg.SetLimit(jobs)
	}
	for i, path := range paths {
		eg.Go(func() error {
			results[i] = batchResult{path: path}
			lvl, err := level.Load(path)
			if err != nil {
				results[i].err = err
				return nil
			}
			rep, err := solveWithTimeout(ctx, svc, lvl, service.Request{}, timeout)
			results[i].report, results[i].err = rep, err
			if err != nil {
				log.WithError(err).WithField("level", lvl.Name).Warn("level failed")
			}
			return nil
		})
	}
	_ = eg.Wait()
	return results
}

func writeSummary(w io.Writer, results []batchResult) (failed int) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LEVEL\tSTATUS\tMOVES\tBEST\tORDER\tELAPSED")
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(tw, "%s\terror: %v\t\t\t\t\n", r.path, r.err)
			continue
		}
		rep := r.report
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%v\t%s\n", rep.Level, rep.Status, rep.Moves, rep.Best, rep.Order, rep.Elapsed)
	}
	tw.Flush()
	return failed
}
