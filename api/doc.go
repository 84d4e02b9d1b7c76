// Package api exposes the solver over HTTP.
//
// Routes:
//
//	GET  /api/health               liveness probe
//	POST /api/solve                solve the level in the request body
//	GET  /api/levels               list levels of the configured directory
//	GET  /api/levels/{name}/solve  solve a level of the configured directory
//
// POST /api/solve accepts a JSON body (YAML with ?format=yaml):
//
//	{"level": {...level file...}, "demo": {"moveList": [...], "goalsCollected": [...]}, "render": true}
//
// Errors are returned as {"error": "..."} with 400 for malformed levels,
// 422 for levels with too many goals, 504 when the solve exceeds the
// server's timeout and 500 otherwise. Every response carries an
// X-Request-ID header.
package api
