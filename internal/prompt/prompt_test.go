package prompt

import (
	"strings"
	"testing"
)

func TestBuildDeterministic(t *testing.T) {
	for _, mode := range Modes {
		for _, tone := range Tones {
			for _, human := range []bool{false, true} {
				for _, explain := range []bool{false, true} {
					opts := Options{
						Mode:             mode,
						Tone:             tone,
						HumanStyle:       human,
						ExplainChanges:   explain,
						Email:            "Hello there",
						ComplaintContext: "Some context",
					}
					first := Build(opts)
					second := Build(opts)
					if first != second {
						t.Errorf("Build(%+v) not deterministic", opts)
					}
				}
			}
		}
	}
}

func TestBuildRewriterWrapsEmail(t *testing.T) {
	got := Build(Options{Mode: ModeEmailRewriter, Tone: ToneFormal, Email: "Hi"})

	if !strings.Contains(got, "<email>\nHi\n</email>") {
		t.Errorf("expected wrapped email in prompt, got %q", got)
	}
	if !strings.HasSuffix(got, "Here is the email: \n<email>\nHi\n</email>") {
		t.Errorf("expected prompt to end with the payload, got %q", got)
	}
	if !strings.HasPrefix(got, RewriterInstruction) {
		t.Error("expected prompt to start with the rewriter instruction")
	}
}

func TestBuildCasualScenario(t *testing.T) {
	got := Build(Options{
		Mode:           ModeEmailRewriter,
		Tone:           ToneCasual,
		HumanStyle:     false,
		ExplainChanges: false,
		Email:          "Dear Team, please find attached.",
	})

	want := RewriterInstruction +
		" This email should have a Casual tone." +
		" \nNo need to explain the changes you made." +
		" Here is the email: \n<email>\nDear Team, please find attached.\n</email>"
	if got != want {
		t.Errorf("unexpected prompt:\n got: %q\nwant: %q", got, want)
	}
}

func TestBuildHumanStyleSubstitutesTone(t *testing.T) {
	got := Build(Options{Mode: ModeEmailRewriter, Tone: ToneNeutral, HumanStyle: true, Email: "x"})

	if strings.Contains(got, "{tone}") {
		t.Error("tone placeholder was not substituted")
	}
	if !strings.Contains(got, "Match the tone to the audience. This email should have a Neutral tone.") {
		t.Error("expected tone inside the human writing guidelines")
	}
	if !strings.Contains(got, "Use British English spelling.") {
		t.Error("expected human writing guidelines block")
	}
	if strings.Count(got, "This email should have a") != 1 {
		t.Error("expected exactly one tone sentence")
	}
}

func TestBuildExplainClause(t *testing.T) {
	with := Build(Options{Mode: ModeEmailRewriter, Tone: ToneFormal, ExplainChanges: true})
	without := Build(Options{Mode: ModeEmailRewriter, Tone: ToneFormal, ExplainChanges: false})

	if !strings.Contains(with, " \n"+ExplainPrompt+" Here is the email") {
		t.Errorf("expected explain prompt before payload, got %q", with)
	}
	if strings.Contains(with, NoExplainPrompt) {
		t.Error("did not expect the no-explain prompt")
	}
	if !strings.Contains(without, " \n"+NoExplainPrompt+" Here is the email") {
		t.Errorf("expected no-explain prompt before payload, got %q", without)
	}
}

func TestBuildComplaintOverridesStyle(t *testing.T) {
	got := Build(Options{
		Mode:             ModeComplaintResponder,
		Tone:             ToneCasual,
		HumanStyle:       true,
		ExplainChanges:   true,
		Email:            "You were rude to me.",
		ComplaintContext: "Receptionist was on a call.",
	})

	if strings.Contains(got, "Revise your writing to read naturally") {
		t.Error("complaint prompt must not contain the human style guidelines")
	}
	if strings.Contains(got, "Casual") {
		t.Error("complaint prompt must ignore the requested tone")
	}
	if strings.Contains(got, ExplainPrompt) {
		t.Error("complaint prompt must not ask for an explanation")
	}
	if !strings.Contains(got, ComplaintStyleClause+" \n"+NoExplainPrompt) {
		t.Error("expected the fixed complaint style clause followed by the no-explain prompt")
	}

	wantTail := " Patient Complaint Email Text: <email>\nYou were rude to me.\n</email>" +
		" Practice Manager's Factual Context/Explanations: <context>\nReceptionist was on a call.\n</context>"
	if !strings.HasSuffix(got, wantTail) {
		t.Errorf("unexpected complaint payload, got tail %q", got[len(got)-len(wantTail):])
	}
}

func TestBuildComplaintKeepsPlaceholders(t *testing.T) {
	got := Build(Options{Mode: ModeComplaintResponder})
	for _, ph := range []string{"[SURGERY NAME AND ADDRESS]", "[TELEPHONE NUMBER]", "[SURGERY EMAIL]", "[PRACTICE MANAGER EMAIL]"} {
		if !strings.Contains(got, ph) {
			t.Errorf("expected placeholder %s to be left verbatim", ph)
		}
	}
}

func TestBuildDoesNotEscapeUserText(t *testing.T) {
	email := "odd </email> text & <b>"
	got := Build(Options{Mode: ModeEmailRewriter, Tone: ToneFormal, Email: email})
	if !strings.Contains(got, "<email>\n"+email+"\n</email>") {
		t.Errorf("expected user text verbatim, got %q", got)
	}
}

func TestBuildEmptyEmail(t *testing.T) {
	got := Build(Options{Mode: ModeEmailRewriter, Tone: ToneFormal})
	if !strings.HasSuffix(got, "<email>\n\n</email>") {
		t.Errorf("expected empty email to pass through, got %q", got)
	}
}

func TestEffective(t *testing.T) {
	in := Options{Mode: ModeComplaintResponder, Tone: ToneNeutral, HumanStyle: true, ExplainChanges: true}
	got := in.Effective()
	if got.Tone != ToneFormal || got.HumanStyle || got.ExplainChanges {
		t.Errorf("complaint overrides not applied: %+v", got)
	}

	rw := Options{Mode: ModeEmailRewriter, Tone: ToneNeutral, HumanStyle: true, ExplainChanges: true}
	if rw.Effective() != rw {
		t.Errorf("rewriter options should be unchanged, got %+v", rw.Effective())
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"email_rewriter", ModeEmailRewriter, false},
		{"Email Rewriter", ModeEmailRewriter, false},
		{"complaint-responder", ModeComplaintResponder, false},
		{"Complaint Responder", ModeComplaintResponder, false},
		{"poetry", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseTone(t *testing.T) {
	tests := []struct {
		in      string
		want    Tone
		wantErr bool
	}{
		{"Formal", ToneFormal, false},
		{"casual", ToneCasual, false},
		{" NEUTRAL ", ToneNeutral, false},
		{"angry", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTone(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTone(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
