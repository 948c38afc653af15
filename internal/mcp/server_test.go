package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/second-draft/internal/draft"
	"github.com/ziadkadry99/second-draft/internal/llm"
	"github.com/ziadkadry99/second-draft/internal/prompt"
)

// mockProvider implements llm.Provider for testing.
type mockProvider struct {
	content string
	err     error
	calls   []llm.CompletionRequest
}

func (m *mockProvider) Name() string { return "groq" }

func (m *mockProvider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	m.calls = append(m.calls, req)
	if m.err != nil {
		return nil, m.err
	}
	return &llm.CompletionResponse{Content: m.content}, nil
}

var testDefaults = draft.Request{
	Options: prompt.Options{
		Mode:           prompt.ModeEmailRewriter,
		Tone:           prompt.ToneCasual,
		HumanStyle:     true,
		ExplainChanges: true,
	},
	Model: "qwen/qwen3-32b",
}

func newTestServer(p llm.Provider) *Server {
	if p == nil {
		return NewServer(nil, testDefaults)
	}
	return NewServer(draft.NewService(p, testDefaults.Model), testDefaults)
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"draft_email", draftEmailTool, "draft_email"},
		{"build_prompt", buildPromptTool, "build_prompt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
			if _, ok := tt.tool.InputSchema.Properties["email"]; !ok {
				t.Error("expected an email argument")
			}
			mode, ok := tt.tool.InputSchema.Properties["mode"].(map[string]any)
			if !ok {
				t.Fatal("expected a mode argument")
			}
			if desc, _ := mode["description"].(string); !strings.Contains(desc, "patient complaint") {
				t.Errorf("mode description = %q, want it to name patient complaints", desc)
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(&mockProvider{})

	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.service == nil {
		t.Error("service not set")
	}
	if srv.defaults.Model != "qwen/qwen3-32b" {
		t.Errorf("defaults.Model = %q", srv.defaults.Model)
	}
}

func TestHandleDraftEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("visible text only", func(t *testing.T) {
		mock := &mockProvider{content: "<think>short and warm</think>\nHi team!"}
		srv := newTestServer(mock)

		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"email": "Dear Team",
			"tone":  "Neutral",
		}

		result, err := srv.handleDraftEmail(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if got := resultText(t, result); got != "\nHi team!" {
			t.Errorf("unexpected text %q", got)
		}
		if len(mock.calls) != 1 || !strings.Contains(mock.calls[0].Messages[0].Content, "a Neutral tone") {
			t.Error("expected tone argument in the prompt")
		}
	})

	t.Run("show reasoning", func(t *testing.T) {
		srv := newTestServer(&mockProvider{content: "<think>short and warm</think>\nHi team!"})

		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"email":          "Dear Team",
			"show_reasoning": true,
		}

		result, _ := srv.handleDraftEmail(ctx, req)
		got := resultText(t, result)
		if !strings.Contains(got, "--- Reasoning ---\nshort and warm") {
			t.Errorf("expected reasoning block, got %q", got)
		}
		if !strings.HasSuffix(got, "--- Draft ---\nHi team!") {
			t.Errorf("expected draft block, got %q", got)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		srv := newTestServer(&mockProvider{err: errors.New("timeout")})

		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"email": "hello"}

		result, err := srv.handleDraftEmail(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected tool error")
		}
		if got := resultText(t, result); got != "Error: Could not get a response from Groq." {
			t.Errorf("unexpected failure text %q", got)
		}
	})

	t.Run("missing email", func(t *testing.T) {
		srv := newTestServer(&mockProvider{})

		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, _ := srv.handleDraftEmail(ctx, req)
		if !result.IsError {
			t.Error("expected error for missing email")
		}
	})

	t.Run("no provider", func(t *testing.T) {
		srv := newTestServer(nil)

		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"email": "hello"}

		result, _ := srv.handleDraftEmail(ctx, req)
		if !result.IsError {
			t.Error("expected error without a provider")
		}
	})
}

func TestHandleBuildPrompt(t *testing.T) {
	srv := newTestServer(nil)
	ctx := context.Background()

	t.Run("complaint overrides", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"email":             "My order is late",
			"mode":              "complaint_responder",
			"tone":              "Casual",
			"complaint_context": "Offer a refund",
		}

		result, err := srv.handleBuildPrompt(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := prompt.Build(prompt.Options{
			Mode:             prompt.ModeComplaintResponder,
			Tone:             prompt.ToneFormal,
			Email:            "My order is late",
			ComplaintContext: "Offer a refund",
		})
		if got := resultText(t, result); got != want {
			t.Errorf("prompt mismatch:\n got %q\nwant %q", got, want)
		}
	})

	t.Run("boolean overrides", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"email":           "Hi",
			"human_style":     false,
			"explain_changes": false,
		}

		result, _ := srv.handleBuildPrompt(ctx, req)
		want := prompt.Build(prompt.Options{Mode: prompt.ModeEmailRewriter, Tone: prompt.ToneCasual, Email: "Hi"})
		if got := resultText(t, result); got != want {
			t.Errorf("prompt mismatch:\n got %q\nwant %q", got, want)
		}
	})

	t.Run("invalid tone", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"email": "Hi", "tone": "angry"}

		result, _ := srv.handleBuildPrompt(ctx, req)
		if !result.IsError {
			t.Error("expected error for invalid tone")
		}
	})
}
