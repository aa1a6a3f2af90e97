package schedule

import "github.com/Perlera89/campus/core"

// Schedule mirrors the server record for a course meeting slot.
type Schedule struct {
	ID          string `json:"id"`
	CourseID    string `json:"courseId"`
	Weekday     string `json:"weekday"`
	StartTime   string `json:"startTime"` // HH:MM
	EndTime     string `json:"endTime"`   // HH:MM
	MeetingLink string `json:"meetingLink"`
}

// NewSchedule contains information needed to create a meeting slot.
type NewSchedule struct {
	CourseID    string `json:"courseId" validate:"required"`
	Weekday     string `json:"weekday" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime   string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime     string `json:"endTime" validate:"required,datetime=15:04"`
	MeetingLink string `json:"meetingLink" validate:"omitempty,url"`
}

func (ns *NewSchedule) Validate() error {
	ns.MeetingLink = core.CleanString(ns.MeetingLink)

	if err := core.Validate.Struct(ns); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}
