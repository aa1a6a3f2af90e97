package section

import (
	"testing"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/Perlera89/campus/core"
)

func TestNewSection_Validate_dateRange(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    null.Time
		end      null.Time
		wantText string
	}{
		{name: "both dates unset"},
		{name: "only start set", start: null.TimeFrom(start)},
		{name: "only end set", end: null.TimeFrom(start)},
		{name: "end after start", start: null.TimeFrom(start), end: null.TimeFrom(start.AddDate(0, 0, 7))},
		{name: "end equals start", start: null.TimeFrom(start), end: null.TimeFrom(start)},
		{
			name: "end before start", start: null.TimeFrom(start), end: null.TimeFrom(start.AddDate(0, 0, -1)),
			wantText: "la fecha de fin no puede ser anterior a la fecha de inicio",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns := NewSection{
				ModuleID:  "mod-1",
				Number:    1,
				Title:     "Semana 1",
				StartDate: tt.start,
				EndDate:   tt.end,
			}

			err := ns.Validate()
			if tt.wantText == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error = %v", err)
				}
				return
			}

			vErr, ok := err.(*core.ValidationError)
			if !ok {
				t.Fatalf("Validate() error = %v, want *core.ValidationError", err)
			}
			if got := vErr.FieldErrors()["endDate"]; got != tt.wantText {
				t.Errorf("endDate error = %q, want %q", got, tt.wantText)
			}
		})
	}
}

func TestUpdateSection_Validate_dateRange(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	us := UpdateSection{
		StartDate: null.TimeFrom(start),
		EndDate:   null.TimeFrom(start.AddDate(0, 0, -1)),
	}
	if err := us.Validate(); err == nil {
		t.Error("Validate() expected date range error")
	}
}
