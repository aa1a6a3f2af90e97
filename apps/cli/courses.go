package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Perlera89/campus/core"
)

func (cli *commandLine) listCourses(page, limit int) error {
	ctx := context.Background()

	if err := cli.sessions.Load(ctx); err != nil {
		return err
	}
	sess := cli.sessions.Session()

	params := core.ListParams{Page: page, Limit: limit}
	params.Clean()

	courses, pagination, err := cli.client.Courses(ctx, sess.AccessToken, params)
	if err != nil {
		return err
	}

	if len(courses) == 0 {
		fmt.Fprintln(cli.out, "No hay cursos")
		return nil
	}
	for _, crs := range courses {
		fmt.Fprintf(cli.out, "%s\t%s\t%s\n", crs.ID, crs.Title, crs.Status)
	}
	fmt.Fprintln(cli.out, formatPageWindow(core.NewPageWindow(pagination.Page, pagination.Pages)))
	return nil
}

// formatPageWindow renders the page controls the way the web view shows them,
// e.g. "… 3 4 [5] 6 7 …".
func formatPageWindow(w core.PageWindow) string {
	if len(w.Pages) == 0 {
		return ""
	}
	parts := make([]string, 0, len(w.Pages)+2)
	if w.LeadingEllipsis {
		parts = append(parts, "…")
	}
	for _, p := range w.Pages {
		if p == w.Current {
			parts = append(parts, fmt.Sprintf("[%d]", p))
		} else {
			parts = append(parts, fmt.Sprintf("%d", p))
		}
	}
	if w.TrailingEllipsis {
		parts = append(parts, "…")
	}
	return strings.Join(parts, " ")
}
