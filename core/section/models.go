package section

import (
	"github.com/volatiletech/null/v8"

	"github.com/Perlera89/campus/core"
)

// Section mirrors the server record for a module section.
type Section struct {
	ID        string    `json:"id"`
	ModuleID  string    `json:"moduleId"`
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	StartDate null.Time `json:"startDate"`
	EndDate   null.Time `json:"endDate"`
	IsVisible bool      `json:"isVisible"`
}

// NewSection contains information needed to create a new Section.
type NewSection struct {
	ModuleID  string    `json:"moduleId" validate:"required"`
	Number    int       `json:"number" validate:"required,min=1"`
	Title     string    `json:"title" validate:"required,min=3,max=100"`
	StartDate null.Time `json:"startDate"`
	EndDate   null.Time `json:"endDate"`
}

func (ns *NewSection) Validate() error {
	ns.Title = core.CleanString(ns.Title)

	if err := core.Validate.Struct(ns); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}

// UpdateSection defines what information may be provided to modify an existing Section.
type UpdateSection struct {
	Number    int       `json:"number" validate:"omitempty,min=1"`
	Title     string    `json:"title" validate:"omitempty,min=3,max=100"`
	StartDate null.Time `json:"startDate"`
	EndDate   null.Time `json:"endDate"`
	IsVisible *bool     `json:"isVisible"`
}

func (us *UpdateSection) Validate() error {
	us.Title = core.CleanString(us.Title)

	if err := core.Validate.Struct(us); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}
