package prompt

import (
	"fmt"
	"strings"
)

// Mode selects which template and which options apply to a submission.
type Mode string

const (
	ModeEmailRewriter      Mode = "email_rewriter"
	ModeComplaintResponder Mode = "complaint_responder"
)

// Label returns the human-readable name shown in the form.
func (m Mode) Label() string {
	switch m {
	case ModeEmailRewriter:
		return "Email Rewriter"
	case ModeComplaintResponder:
		return "Complaint Responder"
	default:
		return string(m)
	}
}

// Tone is the register the rewritten email should have.
type Tone string

const (
	ToneFormal  Tone = "Formal"
	ToneCasual  Tone = "Casual"
	ToneNeutral Tone = "Neutral"
)

// Modes lists the modes in display order.
var Modes = []Mode{ModeEmailRewriter, ModeComplaintResponder}

// Tones lists the tones in display order.
var Tones = []Tone{ToneFormal, ToneCasual, ToneNeutral}

// ParseMode accepts either the canonical value or the form label, case-insensitively.
func ParseMode(s string) (Mode, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	switch norm {
	case "email_rewriter", "rewriter", "rewrite":
		return ModeEmailRewriter, nil
	case "complaint_responder", "complaint", "complaints":
		return ModeComplaintResponder, nil
	}
	return "", fmt.Errorf("unknown mode %q: must be one of email_rewriter, complaint_responder", s)
}

// ParseTone accepts a tone name case-insensitively.
func ParseTone(s string) (Tone, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "formal":
		return ToneFormal, nil
	case "casual":
		return ToneCasual, nil
	case "neutral":
		return ToneNeutral, nil
	}
	return "", fmt.Errorf("unknown tone %q: must be one of Formal, Casual, Neutral", s)
}

// Options is everything the builder needs for one prompt.
type Options struct {
	Mode             Mode
	Tone             Tone
	HumanStyle       bool
	ExplainChanges   bool
	Email            string
	ComplaintContext string
}

// Effective returns the options the builder actually applies. The complaint
// responder always writes formally and never uses the human style guidelines
// or the change explanation, whatever was requested.
func (o Options) Effective() Options {
	if o.Mode == ModeComplaintResponder {
		o.Tone = ToneFormal
		o.HumanStyle = false
		o.ExplainChanges = false
	}
	return o
}
