package forum

import "github.com/Perlera89/campus/core"

// Post mirrors the server record for a forum post.
type Post struct {
	ID          string `json:"id"`
	ModuleID    string `json:"moduleId"`
	CategoryID  string `json:"categoryId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsClosed    bool   `json:"isClosed"`
	IsVisible   bool   `json:"isVisible"`
}

// Reply references a parent Post.
type Reply struct {
	ID          string `json:"id"`
	PostID      string `json:"postId"`
	Description string `json:"description"`
	IsVisible   bool   `json:"isVisible"`
}

// NewPost contains information needed to create a new forum Post.
type NewPost struct {
	ModuleID    string `json:"moduleId" validate:"required"`
	CategoryID  string `json:"categoryId" validate:"required"`
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,max=2000"`
}

func (np *NewPost) Validate() error {
	np.Title = core.CleanString(np.Title)
	np.Description = core.CleanString(np.Description)

	if err := core.Validate.Struct(np); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}

// NewReply contains information needed to reply to a Post.
type NewReply struct {
	PostID      string `json:"postId" validate:"required"`
	Description string `json:"description" validate:"required,max=2000"`
}

func (nr *NewReply) Validate() error {
	nr.Description = core.CleanString(nr.Description)

	if err := core.Validate.Struct(nr); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}

// UpdatePost defines what information may be provided to modify an existing Post.
type UpdatePost struct {
	Title       string `json:"title" validate:"omitempty,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	IsClosed    *bool  `json:"isClosed"`
	IsVisible   *bool  `json:"isVisible"`
}

func (up *UpdatePost) Validate() error {
	up.Title = core.CleanString(up.Title)
	up.Description = core.CleanString(up.Description)

	if err := core.Validate.Struct(up); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}
