package apisvc

import (
	"context"

	"github.com/Perlera89/campus/core/schedule"
)

// Schedules lists the meeting slots of a course.
func (c *Client) Schedules(ctx context.Context, token, courseID string) ([]schedule.Schedule, error) {
	resp, err := c.request(ctx, token).Get("/schedule/all/" + courseID)
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}

	out := struct {
		Schedules []schedule.Schedule `json:"schedules"`
	}{Schedules: []schedule.Schedule{}}
	decodeList(resp, &out)
	return out.Schedules, nil
}

func (c *Client) CreateSchedule(ctx context.Context, token string, ns schedule.NewSchedule) (schedule.Schedule, error) {
	resp, err := c.request(ctx, token).SetBody(ns).Post("/schedule/add")
	if err := checkResponse(resp, err); err != nil {
		return schedule.Schedule{}, err
	}

	var out struct {
		Schedule schedule.Schedule `json:"schedule"`
	}
	if err := decode(resp, &out); err != nil {
		return schedule.Schedule{}, err
	}
	return out.Schedule, nil
}

func (c *Client) DeleteSchedule(ctx context.Context, token, id string) error {
	resp, err := c.request(ctx, token).Delete("/schedule/delete/" + id)
	return checkResponse(resp, err)
}
