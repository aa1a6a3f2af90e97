package profile

import "github.com/Perlera89/campus/core"

// Profile mirrors the server record for a user profile.
// Instructors and students are profiles filtered by role server-side.
type Profile struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Names    string `json:"names"`
	Surnames string `json:"surnames"`
	Email    string `json:"email"`
	Picture  string `json:"picture"`
	Role     string `json:"role"`
}

func (p Profile) FullName() string {
	if p.Surnames == "" {
		return p.Names
	}
	return p.Names + " " + p.Surnames
}

// UpdateProfile defines what information may be provided to modify a Profile.
type UpdateProfile struct {
	Names    string `json:"names" validate:"omitempty,min=2,max=60"`
	Surnames string `json:"surnames" validate:"omitempty,min=2,max=60"`
	Email    string `json:"email" validate:"omitempty,email"`
	Picture  string `json:"picture" validate:"omitempty,url"`
}

func (up *UpdateProfile) Validate() error {
	up.Names = core.CleanString(up.Names)
	up.Surnames = core.CleanString(up.Surnames)
	up.Email = core.CleanString(up.Email, true /* lower */)

	if err := core.Validate.Struct(up); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}
