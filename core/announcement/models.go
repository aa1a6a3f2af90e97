package announcement

import "github.com/Perlera89/campus/core"

// Priorities
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

// Announcement mirrors the server record.
type Announcement struct {
	ID          string `json:"id"`
	CourseID    string `json:"courseId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// NewAnnouncement contains information needed to publish a new Announcement.
type NewAnnouncement struct {
	CourseID    string `json:"courseId" validate:"required"`
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,max=2000"`
	Priority    string `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH"`
}

func (na *NewAnnouncement) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Description = core.CleanString(na.Description)

	if err := core.Validate.Struct(na); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}
