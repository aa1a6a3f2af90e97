package apisvc

import (
	"context"

	"github.com/Perlera89/campus/core/module"
)

// Modules lists the modules of a course.
func (c *Client) Modules(ctx context.Context, token, courseID string) ([]module.Module, error) {
	resp, err := c.request(ctx, token).Get("/course/module/all/" + courseID)
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}

	out := struct {
		Modules []module.Module `json:"modules"`
	}{Modules: []module.Module{}}
	decodeList(resp, &out)
	return out.Modules, nil
}

func (c *Client) ModuleByID(ctx context.Context, token, id string) (module.Module, error) {
	resp, err := c.request(ctx, token).Get("/course/module/" + id)
	if err := checkResponse(resp, err); err != nil {
		return module.Module{}, err
	}

	var out struct {
		Module module.Module `json:"module"`
	}
	if err := decode(resp, &out); err != nil {
		return module.Module{}, err
	}
	return out.Module, nil
}

func (c *Client) CreateModule(ctx context.Context, token string, nm module.NewModule) (module.Module, error) {
	resp, err := c.request(ctx, token).SetBody(nm).Post("/course/module/add")
	if err := checkResponse(resp, err); err != nil {
		return module.Module{}, err
	}

	var out struct {
		Module module.Module `json:"module"`
	}
	if err := decode(resp, &out); err != nil {
		return module.Module{}, err
	}
	return out.Module, nil
}

func (c *Client) UpdateModule(ctx context.Context, token, id string, um module.UpdateModule) error {
	resp, err := c.request(ctx, token).SetBody(um).Put("/course/module/update/" + id)
	return checkResponse(resp, err)
}

func (c *Client) DeleteModule(ctx context.Context, token, id string) error {
	resp, err := c.request(ctx, token).Delete("/course/module/delete/" + id)
	return checkResponse(resp, err)
}

func (c *Client) UpdateModuleVisibility(ctx context.Context, token, id string, visible bool) error {
	resp, err := c.request(ctx, token).
		SetBody(map[string]bool{"isVisible": visible}).
		Patch("/course/module/update-visibility/" + id)
	return checkResponse(resp, err)
}
