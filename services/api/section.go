package apisvc

import (
	"context"

	"github.com/Perlera89/campus/core/section"
)

// Sections lists the sections of a module. A payload missing the
// courseSections collection yields an empty list, not an error.
func (c *Client) Sections(ctx context.Context, token, moduleID string) ([]section.Section, error) {
	resp, err := c.request(ctx, token).Get("/course/section/all/" + moduleID)
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}

	out := struct {
		Sections []section.Section `json:"courseSections"`
	}{Sections: []section.Section{}}
	decodeList(resp, &out)
	return out.Sections, nil
}

func (c *Client) CreateSection(ctx context.Context, token string, ns section.NewSection) (section.Section, error) {
	resp, err := c.request(ctx, token).SetBody(ns).Post("/course/section/add")
	if err := checkResponse(resp, err); err != nil {
		return section.Section{}, err
	}

	var out struct {
		Section section.Section `json:"courseSection"`
	}
	if err := decode(resp, &out); err != nil {
		return section.Section{}, err
	}
	return out.Section, nil
}

func (c *Client) UpdateSection(ctx context.Context, token, id string, us section.UpdateSection) error {
	resp, err := c.request(ctx, token).SetBody(us).Put("/course/section/update/" + id)
	return checkResponse(resp, err)
}

func (c *Client) DeleteSection(ctx context.Context, token, id string) error {
	resp, err := c.request(ctx, token).Delete("/course/section/delete/" + id)
	return checkResponse(resp, err)
}

func (c *Client) UpdateSectionVisibility(ctx context.Context, token, id string, visible bool) error {
	resp, err := c.request(ctx, token).
		SetBody(map[string]bool{"isVisible": visible}).
		Patch("/course/section/update-visibility/" + id)
	return checkResponse(resp, err)
}
