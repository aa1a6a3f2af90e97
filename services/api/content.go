package apisvc

import (
	"context"

	"github.com/Perlera89/campus/core/content"
)

// Contents lists the content entries of a section.
func (c *Client) Contents(ctx context.Context, token, sectionID string) ([]content.Content, error) {
	resp, err := c.request(ctx, token).Get("/course/content/all/" + sectionID)
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}

	out := struct {
		Contents []content.Content `json:"contents"`
	}{Contents: []content.Content{}}
	decodeList(resp, &out)
	return out.Contents, nil
}

func (c *Client) ContentByID(ctx context.Context, token, id string) (content.Content, error) {
	resp, err := c.request(ctx, token).Get("/course/content/" + id)
	if err := checkResponse(resp, err); err != nil {
		return content.Content{}, err
	}

	var out struct {
		Content content.Content `json:"content"`
	}
	if err := decode(resp, &out); err != nil {
		return content.Content{}, err
	}
	return out.Content, nil
}

func (c *Client) CreateContent(ctx context.Context, token string, nc content.NewContent) (content.Content, error) {
	resp, err := c.request(ctx, token).SetBody(nc).Post("/course/content/add")
	if err := checkResponse(resp, err); err != nil {
		return content.Content{}, err
	}

	var out struct {
		Content content.Content `json:"content"`
	}
	if err := decode(resp, &out); err != nil {
		return content.Content{}, err
	}
	return out.Content, nil
}

func (c *Client) UpdateContent(ctx context.Context, token, id string, uc content.UpdateContent) error {
	resp, err := c.request(ctx, token).SetBody(uc).Put("/course/content/update/" + id)
	return checkResponse(resp, err)
}

func (c *Client) DeleteContent(ctx context.Context, token, id string) error {
	resp, err := c.request(ctx, token).Delete("/course/content/delete/" + id)
	return checkResponse(resp, err)
}

func (c *Client) UpdateContentVisibility(ctx context.Context, token, id string, visible bool) error {
	resp, err := c.request(ctx, token).
		SetBody(map[string]bool{"isVisible": visible}).
		Patch("/course/content/update-visibility/" + id)
	return checkResponse(resp, err)
}
