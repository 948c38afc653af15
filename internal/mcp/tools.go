package mcp

import "github.com/mark3labs/mcp-go/mcp"

// requestOptions are the arguments shared by both tools.
func requestOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("The email text to rewrite or respond to"),
		),
		mcp.WithString("mode",
			mcp.Description("Rewrite the email, or draft a Practice Manager's reply to a patient complaint"),
			mcp.Enum("email_rewriter", "complaint_responder"),
		),
		mcp.WithString("tone",
			mcp.Description("Target tone. Complaint responses are always Formal"),
			mcp.Enum("Formal", "Casual", "Neutral"),
		),
		mcp.WithBoolean("human_style",
			mcp.Description("Apply the human writing guidelines (rewriter only)"),
		),
		mcp.WithBoolean("explain_changes",
			mcp.Description("Ask for a short explanation of the changes after the draft (rewriter only)"),
		),
		mcp.WithString("complaint_context",
			mcp.Description("Points the complaint response should address"),
		),
	}
}

// draftEmailTool defines the draft_email MCP tool.
var draftEmailTool = mcp.NewTool("draft_email", append([]mcp.ToolOption{
	mcp.WithDescription("Rewrite an email, or draft a formal reply to a complaint, using the configured language model."),
	mcp.WithString("model",
		mcp.Description("Model identifier; defaults to the configured model"),
	),
	mcp.WithBoolean("show_reasoning",
		mcp.Description("Include the model's hidden reasoning, if any, before the draft"),
	),
}, requestOptions()...)...)

// buildPromptTool defines the build_prompt MCP tool.
var buildPromptTool = mcp.NewTool("build_prompt", append([]mcp.ToolOption{
	mcp.WithDescription("Return the exact prompt that draft_email would send, without calling the model."),
}, requestOptions()...)...)
