// Package service runs the whole solve pipeline for one level.
//
// Service.Solve builds a fresh grid from the level, searches the goal
// orders with package solver, translates the route into command tokens and,
// when a recorded demo is supplied, grades it with package hint. Every call
// works on its own grid, so one Service may be shared by concurrent callers
// (the HTTP API, the MCP server and the batch command).
//
// The search itself cannot be interrupted. Solve honours ctx by returning
// as soon as ctx is done; the abandoned search finishes in the background
// and its result is dropped.
//
// Usage:
//
//	svc := service.New(service.WithLogger(log.StandardLogger()))
//	lvl, _ := level.Load("levels/mission1-level1.json")
//	rep, err := svc.Solve(ctx, lvl, service.Request{Render: true})
//	if err != nil {
//		log.Fatal(err)
//	}
//	rep.WriteText(os.Stdout)
package service
