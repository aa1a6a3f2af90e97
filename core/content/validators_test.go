package content

import (
	"testing"

	"github.com/volatiletech/null/v8"

	"github.com/Perlera89/campus/core"
)

func TestNewContent_Validate_score(t *testing.T) {
	tests := []struct {
		name      string
		score     string
		wantScore null.Int
		wantText  string
	}{
		{name: "empty score is null", score: ""},
		{name: "spaces only is null", score: "   "},
		{name: "valid score coerces", score: " 85 ", wantScore: null.IntFrom(85)},
		{name: "zero is in range", score: "0", wantScore: null.IntFrom(0)},
		{name: "hundred is in range", score: "100", wantScore: null.IntFrom(100)},
		{name: "not a number", score: "diez", wantText: scoreNumberText},
		{name: "below range", score: "-1", wantText: scoreRangeText},
		{name: "above range", score: "101", wantText: scoreRangeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nc := NewContent{
				SectionID:  "sec-1",
				Title:      "Tarea 1",
				Assignment: &NewAssignment{IsGraded: true, Score: tt.score},
			}

			err := nc.Validate()
			if tt.wantText == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error = %v", err)
				}
				if nc.Assignment.ScoreValue != tt.wantScore {
					t.Errorf("ScoreValue = %v, want %v", nc.Assignment.ScoreValue, tt.wantScore)
				}
				return
			}

			vErr, ok := err.(*core.ValidationError)
			if !ok {
				t.Fatalf("Validate() error = %v, want *core.ValidationError", err)
			}
			if got := vErr.FieldErrors()["score"]; got != tt.wantText {
				t.Errorf("score error = %q, want %q", got, tt.wantText)
			}
		})
	}
}

func TestNewContent_Validate_requiredFields(t *testing.T) {
	nc := NewContent{}
	err := nc.Validate()
	vErr, ok := err.(*core.ValidationError)
	if !ok {
		t.Fatalf("Validate() error = %v, want *core.ValidationError", err)
	}
	flds := vErr.FieldErrors()
	for _, field := range []string{"sectionId", "title"} {
		if flds[field] != "este campo es obligatorio" {
			t.Errorf("field %q error = %q", field, flds[field])
		}
	}
}
