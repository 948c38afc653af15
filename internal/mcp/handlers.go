package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/second-draft/internal/draft"
	"github.com/ziadkadry99/second-draft/internal/prompt"
)

// handleDraftEmail runs one submission against the completion provider.
func (s *Server) handleDraftEmail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.service == nil {
		return mcp.NewToolResultError("completion provider not configured. Set the provider's API key and restart the server."), nil
	}

	req, err := s.toRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res := s.service.Submit(ctx, req)
	if res.Failed {
		return mcp.NewToolResultError(res.Visible), nil
	}

	return mcp.NewToolResultText(formatResult(res, request.GetBool("show_reasoning", false))), nil
}

// handleBuildPrompt returns the assembled prompt without a completion call.
func (s *Server) handleBuildPrompt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := s.toRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(prompt.Build(req.Options)), nil
}

// toRequest reads the tool arguments on top of the server defaults.
func (s *Server) toRequest(request mcp.CallToolRequest) (draft.Request, error) {
	email, err := request.RequireString("email")
	if err != nil {
		return draft.Request{}, fmt.Errorf("missing required parameter: email")
	}

	req := s.defaults
	req.Email = email
	req.ComplaintContext = request.GetString("complaint_context", "")
	req.Model = request.GetString("model", req.Model)
	req.HumanStyle = request.GetBool("human_style", req.HumanStyle)
	req.ExplainChanges = request.GetBool("explain_changes", req.ExplainChanges)

	if v := request.GetString("mode", ""); v != "" {
		if req.Mode, err = prompt.ParseMode(v); err != nil {
			return draft.Request{}, err
		}
	}
	if v := request.GetString("tone", ""); v != "" {
		if req.Tone, err = prompt.ParseTone(v); err != nil {
			return draft.Request{}, err
		}
	}
	return req, nil
}

// formatResult renders a draft for an agent. The reasoning block is only
// included when asked for and present.
func formatResult(res draft.Result, showReasoning bool) string {
	if !showReasoning || !res.HasReasoning || res.Reasoning == "" {
		return res.Visible
	}

	var sb strings.Builder
	sb.WriteString("--- Reasoning ---\n")
	sb.WriteString(res.Reasoning)
	sb.WriteString("\n\n--- Draft ---\n")
	sb.WriteString(strings.TrimLeft(res.Visible, "\n"))
	return sb.String()
}
