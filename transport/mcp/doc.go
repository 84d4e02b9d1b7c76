// Package mcp serves the solver as Model Context Protocol tools over stdio.
//
// Tools:
//   - solve_level: solve level file contents passed inline (JSON or YAML),
//     optionally grading a recorded attempt;
//   - list_levels / solve_named: browse and solve the configured level directory.
//
// Results are the plain-text report also printed by the CLI.
package mcp
