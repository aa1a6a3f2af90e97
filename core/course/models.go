package course

import (
	"github.com/volatiletech/null/v8"

	"github.com/Perlera89/campus/core"
)

// Course statuses
const (
	StatusComingSoon      = "COMING_SOON"
	StatusOpenInscription = "OPEN_INSCRIPTION"
	StatusInProgress      = "IN_PROGRESS"
	StatusFinished        = "FINISHED"
)

var Statuses = []string{StatusComingSoon, StatusOpenInscription, StatusInProgress, StatusFinished}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Course mirrors the server record; the client holds no authoritative copy.
type Course struct {
	ID          string       `json:"id"`
	Code        string       `json:"code"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	IsVisible   bool         `json:"isVisible"`
	IsArchived  bool         `json:"isArchived"`
	CategoryID  string       `json:"categoryId"`
	Category    *Category    `json:"category,omitempty"`
	Price       null.Float64 `json:"price"`
	Picture     string       `json:"picture"`
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Code        string `json:"code" validate:"required,min=3,max=20"`
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Status      string `json:"status" validate:"required,oneof=COMING_SOON OPEN_INSCRIPTION IN_PROGRESS FINISHED"`
	CategoryID  string `json:"categoryId" validate:"required"`
	Price       string `json:"price" validate:"-"`
	Picture     string `json:"picture" validate:"omitempty,url"`

	// PriceValue is the normalized price once Validate has coerced Price.
	PriceValue null.Float64 `json:"-" validate:"-"`
}

func (nc *NewCourse) Validate() error {
	nc.Code = core.CleanString(nc.Code)
	nc.Title = core.CleanString(nc.Title)
	nc.Description = core.CleanString(nc.Description)

	if err := core.Validate.Struct(nc); err != nil {
		return core.TranslateValidationErrors(err)
	}

	price, err := coercePrice(nc.Price)
	if err != nil {
		return err
	}
	nc.PriceValue = price
	return nil
}

// UpdateCourse defines what information may be provided to modify an existing Course.
// Empty fields are left untouched server-side.
type UpdateCourse struct {
	Code        string `json:"code" validate:"omitempty,min=3,max=20"`
	Title       string `json:"title" validate:"omitempty,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Status      string `json:"status" validate:"omitempty,oneof=COMING_SOON OPEN_INSCRIPTION IN_PROGRESS FINISHED"`
	CategoryID  string `json:"categoryId"`
	Price       string `json:"price" validate:"-"`
	Picture     string `json:"picture" validate:"omitempty,url"`
	IsVisible   *bool  `json:"isVisible"`

	PriceValue null.Float64 `json:"-" validate:"-"`
}

func (uc *UpdateCourse) Validate() error {
	uc.Code = core.CleanString(uc.Code)
	uc.Title = core.CleanString(uc.Title)
	uc.Description = core.CleanString(uc.Description)

	if err := core.Validate.Struct(uc); err != nil {
		return core.TranslateValidationErrors(err)
	}

	price, err := coercePrice(uc.Price)
	if err != nil {
		return err
	}
	uc.PriceValue = price
	return nil
}
