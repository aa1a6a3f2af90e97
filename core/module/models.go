package module

import "github.com/Perlera89/campus/core"

// Module mirrors the server record for a course module.
type Module struct {
	ID           string  `json:"id"`
	CourseID     string  `json:"courseId"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Picture      string  `json:"picture"`
	IsVisible    bool    `json:"isVisible"`
	IsInstructor bool    `json:"isInstructor"`
	MeetingLink  string  `json:"meetingLink"`
	Progress     float64 `json:"progress"`
}

// NewModule contains information needed to create a new Module.
type NewModule struct {
	CourseID    string `json:"courseId" validate:"required"`
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Picture     string `json:"picture" validate:"omitempty,url"`
	MeetingLink string `json:"meetingLink" validate:"omitempty,url"`
}

func (nm *NewModule) Validate() error {
	nm.Title = core.CleanString(nm.Title)
	nm.Description = core.CleanString(nm.Description)
	nm.MeetingLink = core.CleanString(nm.MeetingLink)

	if err := core.Validate.Struct(nm); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}

// UpdateModule defines what information may be provided to modify an existing Module.
type UpdateModule struct {
	Title       string `json:"title" validate:"omitempty,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Picture     string `json:"picture" validate:"omitempty,url"`
	MeetingLink string `json:"meetingLink" validate:"omitempty,url"`
	IsVisible   *bool  `json:"isVisible"`
}

func (um *UpdateModule) Validate() error {
	um.Title = core.CleanString(um.Title)
	um.Description = core.CleanString(um.Description)
	um.MeetingLink = core.CleanString(um.MeetingLink)

	if err := core.Validate.Struct(um); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}
