package apisvc

import (
	"context"
	"strconv"

	"github.com/Perlera89/campus/core"
	"github.com/Perlera89/campus/core/course"
)

// Courses lists courses page by page.
func (c *Client) Courses(ctx context.Context, token string, p core.ListParams) ([]course.Course, core.Pagination, error) {
	p.Clean()
	resp, err := c.request(ctx, token).
		SetQueryParam("page", strconv.Itoa(p.Page)).
		SetQueryParam("limit", strconv.Itoa(p.Limit)).
		Get("/course/all")
	if err := checkResponse(resp, err); err != nil {
		return nil, core.Pagination{}, err
	}

	out := struct {
		Courses    []course.Course `json:"courses"`
		Pagination core.Pagination `json:"pagination"`
	}{Courses: []course.Course{}}
	decodeList(resp, &out)
	return out.Courses, out.Pagination, nil
}

// CourseByID fetches the authoritative copy of one course; pages re-fetch it on
// entry rather than trusting the store cache.
func (c *Client) CourseByID(ctx context.Context, token, id string) (course.Course, error) {
	resp, err := c.request(ctx, token).Get("/course/" + id)
	if err := checkResponse(resp, err); err != nil {
		return course.Course{}, err
	}

	var out struct {
		Course course.Course `json:"course"`
	}
	if err := decode(resp, &out); err != nil {
		return course.Course{}, err
	}
	return out.Course, nil
}

func (c *Client) CreateCourse(ctx context.Context, token string, nc course.NewCourse) (course.Course, error) {
	resp, err := c.request(ctx, token).SetBody(nc).Post("/course/add")
	if err := checkResponse(resp, err); err != nil {
		return course.Course{}, err
	}

	var out struct {
		Course course.Course `json:"course"`
	}
	if err := decode(resp, &out); err != nil {
		return course.Course{}, err
	}
	return out.Course, nil
}

func (c *Client) UpdateCourse(ctx context.Context, token, id string, uc course.UpdateCourse) error {
	resp, err := c.request(ctx, token).SetBody(uc).Put("/course/update/" + id)
	return checkResponse(resp, err)
}

func (c *Client) DeleteCourse(ctx context.Context, token, id string) error {
	resp, err := c.request(ctx, token).Delete("/course/delete/" + id)
	return checkResponse(resp, err)
}

func (c *Client) UpdateCourseVisibility(ctx context.Context, token, id string, visible bool) error {
	resp, err := c.request(ctx, token).
		SetBody(map[string]bool{"isVisible": visible}).
		Patch("/course/update-visibility/" + id)
	return checkResponse(resp, err)
}

func (c *Client) ArchiveCourse(ctx context.Context, token, id string, archived bool) error {
	resp, err := c.request(ctx, token).
		SetBody(map[string]bool{"isArchived": archived}).
		Patch("/course/archive/" + id)
	return checkResponse(resp, err)
}

// CourseCategories lists every category; the catalog filter treats an empty
// selection as "all".
func (c *Client) CourseCategories(ctx context.Context, token string) ([]course.Category, error) {
	resp, err := c.request(ctx, token).Get("/course/category/all")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}

	out := struct {
		Categories []course.Category `json:"categories"`
	}{Categories: []course.Category{}}
	decodeList(resp, &out)
	return out.Categories, nil
}
