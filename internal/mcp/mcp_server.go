// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/huangsam/prioritize/internal/contract"
)

// NewMCPServer initializes and configures the prioritize MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Prioritize Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: get_priority_weights ---
	s.AddTool(mcp.NewTool("get_priority_weights",
		mcp.WithDescription("Calculate priority weights from pairwise comparison tables using the analytic hierarchy process."),
		mcp.WithString("input_path", mcp.Description("Path to the input workbook (.xlsx) or directory of CSV tables."), mcp.Required()),
		mcp.WithNumber("threshold", mcp.Description("Consistency-ratio limit above which a comparison matrix is rejected.")),
	), h.handleGetPriorityWeights)

	// --- 2. Tool: evaluate_options ---
	s.AddTool(mcp.NewTool("evaluate_options",
		mcp.WithDescription("Run the full evaluation pipeline: priority weights, result scoring, and ranking of options into rating bins."),
		mcp.WithString("input_path", mcp.Description("Path to the input workbook (.xlsx) or directory of CSV tables."), mcp.Required()),
		mcp.WithNumber("threshold", mcp.Description("Consistency-ratio limit above which a comparison matrix is rejected.")),
		mcp.WithNumber("bins", mcp.Description("Count of rating bins for the ranked options.")),
		mcp.WithBoolean("zero_floor", mcp.Description("Span the rating bins from zero instead of the lowest observed total.")),
	), h.handleEvaluateOptions)

	return s
}

// StartMCPServer starts the prioritize MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
