package content

import (
	"github.com/volatiletech/null/v8"

	"github.com/Perlera89/campus/core"
)

// Content types discriminate the authoring forms and routes without appearing
// in the URL; the selected value lives in the content store.
const (
	TypeMaterial   = "MATERIAL"
	TypeAssignment = "ASSIGNMENT"
)

var Types = []string{TypeMaterial, TypeAssignment}

// File is an attachment uploaded alongside a content entry.
type File struct {
	Title     string `json:"title"`
	Extension string `json:"extension"`
	URL       string `json:"url"`
}

// RubricEntry is one grading criterion of an assignment.
type RubricEntry struct {
	Criterion string `json:"criterion"`
	Points    int    `json:"points"`
}

// Assignment is the graded sub-record optionally embedded in a Content.
type Assignment struct {
	IsGraded        bool          `json:"isGraded"`
	DueDate         null.Time     `json:"dueDate"`
	Score           null.Int      `json:"score"`
	AllowLateSubmit bool          `json:"allowLateSubmit"`
	Rubric          []RubricEntry `json:"rubric,omitempty"`
}

// Content mirrors the server record for a section's content entry.
type Content struct {
	ID          string      `json:"id"`
	SectionID   string      `json:"sectionId"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Files       []File      `json:"files,omitempty"`
	IsVisible   bool        `json:"isVisible"`
	Assignment  *Assignment `json:"assignment,omitempty"`
}

// NewAssignment is the conditional sub-schema filled in when the content type
// is ASSIGNMENT. Score arrives as a string from the form; Validate coerces it.
type NewAssignment struct {
	IsGraded        bool          `json:"isGraded"`
	DueDate         null.Time     `json:"dueDate"`
	Score           string        `json:"score" validate:"-"`
	AllowLateSubmit bool          `json:"allowLateSubmit"`
	Rubric          []RubricEntry `json:"rubric" validate:"omitempty,dive"`

	// ScoreValue is the normalized score once Validate has coerced Score.
	ScoreValue null.Int `json:"-" validate:"-"`
}

// NewContent contains information needed to create a new Content entry.
type NewContent struct {
	SectionID   string         `json:"sectionId" validate:"required"`
	Title       string         `json:"title" validate:"required,min=3,max=100"`
	Description string         `json:"description" validate:"omitempty,max=1000"`
	Files       []File         `json:"files" validate:"omitempty,dive"`
	Assignment  *NewAssignment `json:"assignment"`
}

func (nc *NewContent) Validate() error {
	nc.Title = core.CleanString(nc.Title)
	nc.Description = core.CleanString(nc.Description)

	if err := core.Validate.Struct(nc); err != nil {
		return core.TranslateValidationErrors(err)
	}
	if nc.Assignment != nil {
		return nc.Assignment.validate()
	}
	return nil
}

// UpdateContent defines what information may be provided to modify an existing Content.
type UpdateContent struct {
	Title       string         `json:"title" validate:"omitempty,min=3,max=100"`
	Description string         `json:"description" validate:"omitempty,max=1000"`
	Files       []File         `json:"files" validate:"omitempty,dive"`
	IsVisible   *bool          `json:"isVisible"`
	Assignment  *NewAssignment `json:"assignment"`
}

func (uc *UpdateContent) Validate() error {
	uc.Title = core.CleanString(uc.Title)
	uc.Description = core.CleanString(uc.Description)

	if err := core.Validate.Struct(uc); err != nil {
		return core.TranslateValidationErrors(err)
	}
	if uc.Assignment != nil {
		return uc.Assignment.validate()
	}
	return nil
}
