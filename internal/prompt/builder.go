package prompt

import (
	"strings"
)

// Build assembles the instruction sent to the completion service. It is a
// pure function of opts. User text is wrapped in <email> and <context> tags
// verbatim; nothing inside it is escaped, so a literal </email> in the draft
// ends up in the prompt as-is.
func Build(opts Options) string {
	opts = opts.Effective()

	var b strings.Builder

	// 1. Base instruction.
	switch opts.Mode {
	case ModeComplaintResponder:
		b.WriteString(ComplaintTemplate)
	default:
		b.WriteString(RewriterInstruction)
	}

	// 2. Style clause.
	b.WriteString(" ")
	b.WriteString(styleClause(opts))

	// 3. Explanation instruction.
	b.WriteString(" \n")
	if opts.ExplainChanges {
		b.WriteString(ExplainPrompt)
	} else {
		b.WriteString(NoExplainPrompt)
	}

	// 4. Payload.
	switch opts.Mode {
	case ModeComplaintResponder:
		b.WriteString(" Patient Complaint Email Text: <email>\n")
		b.WriteString(opts.Email)
		b.WriteString("\n</email> Practice Manager's Factual Context/Explanations: <context>\n")
		b.WriteString(opts.ComplaintContext)
		b.WriteString("\n</context>")
	default:
		b.WriteString(" Here is the email: \n<email>\n")
		b.WriteString(opts.Email)
		b.WriteString("\n</email>")
	}

	return b.String()
}

func styleClause(opts Options) string {
	if opts.Mode == ModeComplaintResponder {
		return ComplaintStyleClause
	}
	if opts.HumanStyle {
		return humanGuidelines(opts.Tone)
	}
	return ToneClause(opts.Tone)
}

// ToneClause is the short tone sentence used when the human style is off.
func ToneClause(tone Tone) string {
	return "This email should have a " + string(tone) + " tone."
}

// humanGuidelines substitutes the tone into its single insertion point.
func humanGuidelines(tone Tone) string {
	return strings.Replace(HumanWritingGuidelines, toneToken, string(tone), 1)
}
