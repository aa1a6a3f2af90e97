package section

import (
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/Perlera89/campus/core"
)

const dateOrderTag = "dateorder"

func init() {
	core.Validate.RegisterStructValidation(sectionStructValidation, NewSection{}, UpdateSection{})
}

// sectionStructValidation does struct level validation on NewSection and UpdateSection.
func sectionStructValidation(sl validator.StructLevel) {
	switch s := sl.Current().Interface().(type) {
	case NewSection:
		checkDateRange(sl, s.StartDate, s.EndDate)
	case UpdateSection:
		checkDateRange(sl, s.StartDate, s.EndDate)
	}
}

// checkDateRange reports an error when both dates are set and the end precedes the start.
func checkDateRange(sl validator.StructLevel, start, end null.Time) {
	if start.Valid && end.Valid && end.Time.Before(start.Time) {
		sl.ReportError(end, "endDate", "EndDate", dateOrderTag, "")
	}
}
