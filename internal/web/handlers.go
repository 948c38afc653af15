package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ziadkadry99/second-draft/internal/draft"
	"github.com/ziadkadry99/second-draft/internal/llm"
	"github.com/ziadkadry99/second-draft/internal/prompt"
)

// submitRequest is the JSON body of a submission. Omitted fields take the
// configured defaults.
type submitRequest struct {
	Mode             string `json:"mode,omitempty"`
	Tone             string `json:"tone,omitempty"`
	HumanStyle       *bool  `json:"human_style,omitempty"`
	ExplainChanges   *bool  `json:"explain_changes,omitempty"`
	Email            string `json:"email"`
	ComplaintContext string `json:"complaint_context,omitempty"`
	Model            string `json:"model,omitempty"`
}

// rewriteResponse is a submission result plus its rendered HTML.
type rewriteResponse struct {
	draft.Result
	VisibleHTML   string `json:"visible_html"`
	ReasoningHTML string `json:"reasoning_html,omitempty"`
}

type promptResponse struct {
	Prompt          string         `json:"prompt"`
	Effective       optionsPayload `json:"effective"`
	EstimatedTokens int            `json:"estimated_tokens"`
}

type optionsPayload struct {
	Mode           prompt.Mode `json:"mode"`
	Tone           prompt.Tone `json:"tone"`
	HumanStyle     bool        `json:"human_style"`
	ExplainChanges bool        `json:"explain_changes"`
}

type choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type optionsResponse struct {
	Modes    []choice       `json:"modes"`
	Tones    []prompt.Tone  `json:"tones"`
	Models   []string       `json:"models"`
	Model    string         `json:"model"`
	Defaults optionsPayload `json:"defaults"`
}

var errNoProvider = errors.New("completion provider not configured")

// toRequest applies the submission on top of the defaults.
func (h *Web) toRequest(in submitRequest) (draft.Request, error) {
	req := h.defaults

	if in.Mode != "" {
		mode, err := prompt.ParseMode(in.Mode)
		if err != nil {
			return draft.Request{}, err
		}
		req.Mode = mode
	}
	if in.Tone != "" {
		tone, err := prompt.ParseTone(in.Tone)
		if err != nil {
			return draft.Request{}, err
		}
		req.Tone = tone
	}
	if in.HumanStyle != nil {
		req.HumanStyle = *in.HumanStyle
	}
	if in.ExplainChanges != nil {
		req.ExplainChanges = *in.ExplainChanges
	}
	if in.Model != "" {
		req.Model = in.Model
	}
	req.Email = in.Email
	req.ComplaintContext = in.ComplaintContext

	return req, nil
}

// submit runs one submission and renders its output.
func (h *Web) submit(r *http.Request, req draft.Request) (rewriteResponse, error) {
	if h.service == nil {
		return rewriteResponse{}, errNoProvider
	}

	res := h.service.Submit(r.Context(), req)
	out := rewriteResponse{Result: res}

	if h.md == nil {
		return out, nil
	}

	var err error
	if out.VisibleHTML, err = h.md.HTML(res.Visible); err != nil {
		log.Printf("web: rendering draft %s: %v", res.ID, err)
	}
	if res.HasReasoning && res.Reasoning != "" {
		if out.ReasoningHTML, err = h.md.HTML(res.Reasoning); err != nil {
			log.Printf("web: rendering reasoning %s: %v", res.ID, err)
		}
	}
	return out, nil
}

func (h *Web) handleOptions(w http.ResponseWriter, r *http.Request) {
	modes := make([]choice, 0, len(prompt.Modes))
	for _, m := range prompt.Modes {
		modes = append(modes, choice{Value: string(m), Label: m.Label()})
	}

	models := h.models
	if models == nil {
		models = []string{}
	}

	writeJSON(w, http.StatusOK, optionsResponse{
		Modes:    modes,
		Tones:    prompt.Tones,
		Models:   models,
		Model:    h.defaults.Model,
		Defaults: toPayload(h.defaults.Options),
	})
}

func (h *Web) handlePrompt(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	built := prompt.Build(req.Options)
	writeJSON(w, http.StatusOK, promptResponse{
		Prompt:          built,
		Effective:       toPayload(req.Effective()),
		EstimatedTokens: llm.EstimateTokens(built),
	})
}

func (h *Web) handleRewrite(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	out, err := h.submit(r, req)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Web) decode(w http.ResponseWriter, r *http.Request) (draft.Request, bool) {
	var in submitRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body: " + err.Error()})
		return draft.Request{}, false
	}
	req, err := h.toRequest(in)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return draft.Request{}, false
	}
	return req, true
}

func toPayload(o prompt.Options) optionsPayload {
	return optionsPayload{
		Mode:           o.Mode,
		Tone:           o.Tone,
		HumanStyle:     o.HumanStyle,
		ExplainChanges: o.ExplainChanges,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
