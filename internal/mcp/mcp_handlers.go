package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/huangsam/prioritize/core"
	"github.com/huangsam/prioritize/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// requestConfig derives a per-request config from the base one.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	cfg.InputPath = request.GetString("input_path", "")
	if cfg.InputPath == "" {
		return nil, fmt.Errorf("input_path is required")
	}
	if t := request.GetFloat("threshold", 0); t > 0 {
		cfg.Threshold = t
	}
	return cfg, nil
}

func (h *toolHandler) handleGetPriorityWeights(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, _, err := core.GetWeightsResult(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("weight calculation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleEvaluateOptions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if b := request.GetInt("bins", 0); b > 0 && b != cfg.Bins {
		return mcp.NewToolResultError(fmt.Sprintf("bins is %d but %d bin labels are configured; adjust bin-labels in the server config", b, len(cfg.BinLabels))), nil
	}
	cfg.ZeroFloor = request.GetBool("zero_floor", cfg.ZeroFloor)

	result, _, err := core.GetEvaluationResult(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
