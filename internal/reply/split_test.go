package reply

import "testing"

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Parts
	}{
		{
			name: "inline span",
			in:   "A<think> hidden </think>B",
			want: Parts{Reasoning: "hidden", HasReasoning: true, Visible: "AB"},
		},
		{
			name: "no span",
			in:   "Dear Team,\nplease find attached.",
			want: Parts{Visible: "Dear Team,\nplease find attached."},
		},
		{
			name: "empty",
			in:   "",
			want: Parts{},
		},
		{
			name: "multiline reasoning",
			in:   "<think>\nfirst line\nsecond line\n</think>\n\nHello Sam,",
			want: Parts{Reasoning: "first line\nsecond line", HasReasoning: true, Visible: "\n\nHello Sam,"},
		},
		{
			name: "empty span",
			in:   "<think></think>Hi",
			want: Parts{Reasoning: "", HasReasoning: true, Visible: "Hi"},
		},
		{
			name: "only first span considered",
			in:   "<think>one</think>mid<think>two</think>end",
			want: Parts{Reasoning: "one", HasReasoning: true, Visible: "mid<think>two</think>end"},
		},
		{
			name: "unclosed tag",
			in:   "<think>never closed",
			want: Parts{Visible: "<think>never closed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.in)
			if got != tt.want {
				t.Errorf("Split(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitLeavesPlainTextUnchanged(t *testing.T) {
	inputs := []string{"x", "  padded  ", "<b>bold</b>", "think about it", "</think> stray close"}
	for _, in := range inputs {
		got := Split(in)
		if got.HasReasoning || got.Visible != in {
			t.Errorf("Split(%q) = %+v, want visible unchanged", in, got)
		}
	}
}
