package suite

import (
	"testing"

	"github.com/funvibe/patcover/internal/config"
)

func TestVerdicts(t *testing.T) {
	tests := []struct {
		name     string
		result   *Result
		want     string
		expected string
	}{
		{"coverage", &Result{Case: &Case{Kind: config.CoverageKind, Want: true}, Got: false}, "does not cover", "covers"},
		{"refines", &Result{Case: &Case{Kind: config.RefinesKind}, Got: true}, "refines", "does not refine"},
		{"unify", &Result{Case: &Case{Kind: config.UnifyKind, Want: true}, Got: true}, "unifies", "unifies"},
		{"covering", &Result{Case: &Case{Kind: config.CoveringKind, WantCovered: false}, Got: true, Indices: []int{0, 2}}, "covered by [0, 2]", "uncovered"},
		{"covering empty", &Result{Case: &Case{Kind: config.CoveringKind, WantCovered: true}, Got: true, Indices: []int{}}, "covered by []", "covered by []"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Verdict(); got != tt.want {
				t.Errorf("Verdict() = %q, want %q", got, tt.want)
			}
			if got := tt.result.Case.Expected(); got != tt.expected {
				t.Errorf("Expected() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]*Result{{Pass: true}, {Pass: false}, {Pass: true}})
	if s.Passed != 2 || s.Failed != 1 {
		t.Errorf("Summarize() = %+v", s)
	}
}
