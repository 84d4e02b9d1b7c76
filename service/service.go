package service

import (
	"context"
	"fmt"
	"time"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/command"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/hint"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/level"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/render"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/solver"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service solves levels. It is safe for concurrent use.
type Service struct {
	opts Options
	log  logrus.FieldLogger
}

// New creates a Service.
func New(opts ...Option) *Service {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Service{opts: o, log: o.Logger}
}

type outcome struct {
	report *Report
	err    error
}

// Solve runs the pipeline for lvl. It returns ctx.Err() (wrapped) when ctx
// is done before the search finishes.
func (s *Service) Solve(ctx context.Context, lvl *level.Level, req Request) (*Report, error) {
	if lvl == nil {
		return nil, ErrNilLevel
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan outcome, 1)
	go func() {
		rep, err := s.solve(lvl, req)
		done <- outcome{report: rep, err: err}
	}()

	select {
	case <-ctx.Done():
		s.log.WithField("level", lvl.Name).Warn("solve abandoned")
		return nil, fmt.Errorf("service: solve %s: %w", lvl.Name, ctx.Err())
	case out := <-done:
		return out.report, out.err
	}
}

func (s *Service) solve(lvl *level.Level, req Request) (*Report, error) {
	began := time.Now()

	// 1) Board.
	g, err := lvl.Build()
	if err != nil {
		return nil, err
	}
	facing, err := lvl.Facing()
	if err != nil {
		return nil, err
	}
	goals := g.Goals()
	entry := s.log.WithFields(logrus.Fields{"level": lvl.Name, "goals": len(goals), "best": lvl.Solutions.Best})
	entry.Debug("solving level")

	rep := &Report{
		ID:     uuid.NewString(),
		Level:  lvl.Name,
		Start:  lvl.Start(),
		Facing: facing,
		Hammer: lvl.Hammer,
		Best:   lvl.Solutions.Best,
	}
	for _, goal := range goals {
		rep.Goals = append(rep.Goals, goal.Point)
	}
	if req.Render {
		rep.Grid = render.String(g, rep.Start)
	}

	// 2) Goal orders.
	res, err := solver.Solve(g, rep.Start, goals,
		solver.WithBound(lvl.Solutions.Best),
		solver.WithDestroy(lvl.Hammer),
		solver.WithFacing(facing),
		solver.WithResetBricks(s.opts.ResetBricks),
		solver.WithMaxGoals(s.opts.MaxGoals),
		solver.WithTieBreak(s.opts.TieBreak),
		solver.WithLogger(entry),
	)
	if err != nil {
		return nil, err
	}
	rep.Status = res.Status
	rep.Moves = res.Moves()
	rep.Order = res.Order
	rep.Collected = res.Collected
	rep.Path = res.Path
	rep.Rotations = res.Rotations
	rep.Permutations = res.Permutations
	rep.Legs = res.Legs

	if res.Status == solver.StatusNoSolution {
		for _, goal := range g.Unreachable(rep.Start, lvl.Hammer, goals) {
			rep.Unreachable = append(rep.Unreachable, goal.Point)
		}
		entry.WithField("unreachable", rep.Unreachable).Warn("no tour collects every goal")
	}

	// 3) Commands and hint.
	if res.Status != solver.StatusNoSolution {
		rep.Commands, err = command.Translate(res.Path, rep.Start, facing, res.Rotations)
		if err != nil {
			return nil, fmt.Errorf("service: translate route of %s: %w", lvl.Name, err)
		}
		if req.Demo != nil {
			h := hint.Generate(*req.Demo, rep.Commands, goals, res.Collected)
			rep.Hint = &h
			rep.UserMoves = req.Demo.MoveList
		}
	}

	rep.Elapsed = time.Since(began)
	entry.WithFields(logrus.Fields{
		"status":  rep.Status,
		"moves":   rep.Moves,
		"elapsed": rep.Elapsed,
	}).Info("level solved")
	return rep, nil
}
