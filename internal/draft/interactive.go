package draft

import (
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/second-draft/internal/prompt"
)

// CollectInteractive asks for the sidebar settings of one submission,
// starting from defaults. Tone and the style toggles are skipped for the
// complaint responder, which overrides them anyway.
func CollectInteractive(defaults Request, models []string) (Request, error) {
	req := defaults

	modeSel := promptui.Select{
		Label:     "Select mode",
		Items:     []string{prompt.ModeEmailRewriter.Label(), prompt.ModeComplaintResponder.Label()},
		CursorPos: modeIndex(defaults.Mode),
	}
	idx, _, err := modeSel.Run()
	if err != nil {
		return Request{}, fmt.Errorf("mode prompt: %w", err)
	}
	req.Mode = prompt.Modes[idx]

	if len(models) > 0 {
		modelSel := promptui.Select{
			Label:     "Model",
			Items:     models,
			CursorPos: position(models, defaults.Model),
		}
		if _, req.Model, err = modelSel.Run(); err != nil {
			return Request{}, fmt.Errorf("model prompt: %w", err)
		}
	}

	if req.Mode == prompt.ModeComplaintResponder {
		return req, nil
	}

	tones := make([]string, len(prompt.Tones))
	for i, t := range prompt.Tones {
		tones[i] = string(t)
	}
	toneSel := promptui.Select{
		Label:     "Select the tone of the email",
		Items:     tones,
		CursorPos: position(tones, string(defaults.Tone)),
	}
	if idx, _, err = toneSel.Run(); err != nil {
		return Request{}, fmt.Errorf("tone prompt: %w", err)
	}
	req.Tone = prompt.Tones[idx]

	if req.HumanStyle, err = askToggle("Apply human writing style", defaults.HumanStyle); err != nil {
		return Request{}, fmt.Errorf("human style prompt: %w", err)
	}
	if req.ExplainChanges, err = askToggle("Explain changes", defaults.ExplainChanges); err != nil {
		return Request{}, fmt.Errorf("explain prompt: %w", err)
	}

	return req, nil
}

func askToggle(label string, current bool) (bool, error) {
	cursor := 1
	if current {
		cursor = 0
	}
	p := promptui.Select{
		Label:     label,
		Items:     []string{"on", "off"},
		CursorPos: cursor,
	}
	idx, _, err := p.Run()
	if err != nil {
		return false, err
	}
	return idx == 0, nil
}

func modeIndex(m prompt.Mode) int {
	for i, v := range prompt.Modes {
		if v == m {
			return i
		}
	}
	return 0
}

func position(items []string, want string) int {
	for i, v := range items {
		if v == want {
			return i
		}
	}
	return 0
}
