package reply

import (
	"regexp"
	"strings"
)

// thinkSpan matches one reasoning span. (?s) lets it cross lines and the
// lazy quantifier stops at the first closing tag.
var thinkSpan = regexp.MustCompile(`(?s)<think>(.*?)</think>`)

// Parts is a model reply separated into its hidden reasoning and the text
// meant for the user.
type Parts struct {
	Reasoning    string `json:"reasoning,omitempty"`
	HasReasoning bool   `json:"has_reasoning"`
	Visible      string `json:"visible"`
}

// Split extracts the first <think>...</think> span from reply. Only that span
// is removed from the visible text; any later spans are left in place.
func Split(reply string) Parts {
	if reply == "" {
		return Parts{}
	}

	loc := thinkSpan.FindStringSubmatchIndex(reply)
	if loc == nil {
		return Parts{Visible: reply}
	}

	return Parts{
		Reasoning:    strings.TrimSpace(reply[loc[2]:loc[3]]),
		HasReasoning: true,
		Visible:      reply[:loc[0]] + reply[loc[1]:],
	}
}
