package mcp

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/level"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"
)

// Name and Version identify the server to MCP clients.
const (
	Name    = "Bomberbot Solver"
	Version = "1.0.0"
)

// Solver is the part of service.Service the tools need.
type Solver interface {
	Solve(ctx context.Context, lvl *level.Level, req service.Request) (*service.Report, error)
}

// Server exposes a Solver as MCP tools.
type Server struct {
	solver    Solver
	levelsDir string
	log       log.FieldLogger
	mcpServer *server.MCPServer
}

// NewServer creates the MCP server; levelsDir may be empty.
func NewServer(s Solver, levelsDir string, logger log.FieldLogger) *Server {
	if logger == nil {
		logger = log.StandardLogger()
	}
	srv := &Server{solver: s, levelsDir: levelsDir, log: logger}
	srv.initMCPServer()
	return srv
}

func (s *Server) initMCPServer() {
	s.mcpServer = server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Bomberbot level solver

A level is a grid with stars (S), rubies (R), hammers (H), destroyable bricks (D)
and permanent bricks (X). The bot collects every star and hammer and smashes every
ruby; with a hammer it can also smash destroyable bricks.

AVAILABLE TOOLS:
- solve_level: solve level file contents, optionally grading the player's moves
- list_levels: list the levels of the server's level directory
- solve_named: solve one of those levels by name`),
	)
	s.registerTools()
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "solve_level",
		Description: "Solve a Bomberbot level and return the shortest command list found",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"level": map[string]interface{}{
					"type":        "string",
					"description": "Level file contents (tiles, dimension, posPlayer, dirPlayer, hammer, solutions)",
				},
				"format": map[string]interface{}{
					"type":        "string",
					"description": "json (default) or yaml",
				},
				"moves": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Player's recorded commands to grade (optional)",
				},
				"goals_collected": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "number"},
					"description": "Goal indices the player completed, in order (optional)",
				},
				"render": map[string]interface{}{
					"type":        "boolean",
					"description": "Include the ASCII board",
				},
			},
			Required: []string{"level"},
		},
	}, s.handleSolveLevel)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_levels",
		Description: "List the levels available by name",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListLevels)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "solve_named",
		Description: "Solve a level of the level directory by name",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Level name as returned by list_levels",
				},
				"render": map[string]interface{}{
					"type":        "boolean",
					"description": "Include the ASCII board",
				},
			},
			Required: []string{"name"},
		},
	}, s.handleSolveNamed)
}

// GetMCPServer returns the underlying MCP server for serving.
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio blocks serving MCP over stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Tool handlers

func (s *Server) handleSolveLevel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	text, _ := args["level"].(string)
	formatName, _ := args["format"].(string)
	render, _ := args["render"].(bool)

	format, err := level.ParseFormat(formatName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	lvl, err := level.Parse([]byte(text), format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := service.Request{Render: render}
	if demo, ok := demoFrom(args); ok {
		req.Demo = &demo
	}
	return s.solve(ctx, lvl, req), nil
}

func (s *Server) handleListLevels(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.levelsDir == "" {
		return mcp.NewToolResultError("no level directory configured"), nil
	}
	paths, err := level.List(s.levelsDir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Levels (%d):\n", len(paths))
	for _, p := range paths {
		fmt.Fprintf(&b, "- %s\n", strings.TrimSuffix(filepath.Base(p), filepath.Ext(p)))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleSolveNamed(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.levelsDir == "" {
		return mcp.NewToolResultError("no level directory configured"), nil
	}
	args, _ := request.Params.Arguments.(map[string]interface{})
	name, _ := args["name"].(string)
	render, _ := args["render"].(bool)

	path, err := level.Lookup(s.levelsDir, name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	lvl, err := level.Load(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.solve(ctx, lvl, service.Request{Render: render}), nil
}

func (s *Server) solve(ctx context.Context, lvl *level.Level, req service.Request) *mcp.CallToolResult {
	rep, err := s.solver.Solve(ctx, lvl, req)
	if err != nil {
		s.log.WithError(err).WithField("level", lvl.Name).Warn("mcp solve failed")
		return mcp.NewToolResultError(err.Error())
	}

	var buf bytes.Buffer
	if err = rep.WriteText(&buf); err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(buf.String())
}

// demoFrom reads the optional recorded attempt from tool arguments.
func demoFrom(args map[string]interface{}) (level.Demo, bool) {
	movesRaw, hasMoves := args["moves"].([]interface{})
	goalsRaw, hasGoals := args["goals_collected"].([]interface{})
	if !hasMoves && !hasGoals {
		return level.Demo{}, false
	}

	var demo level.Demo
	for _, m := range movesRaw {
		if str, ok := m.(string); ok {
			demo.MoveList = append(demo.MoveList, str)
		}
	}
	for _, g := range goalsRaw {
		switch v := g.(type) {
		case float64:
			demo.GoalsCollected = append(demo.GoalsCollected, int(v))
		case int:
			demo.GoalsCollected = append(demo.GoalsCollected, v)
		}
	}
	return demo, true
}
