package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mkresic/karijera/internal/client/api"
)

// ErasmusProjects lists projects: erasmus [faculty-slug] [field-of-study].
func (a *App) ErasmusProjects(ctx context.Context, args []string) error {
	filter := api.ErasmusFilter{}
	if len(args) > 0 {
		filter.Faculty = args[0]
	}
	if len(args) > 1 {
		filter.FieldOfStudy = args[1]
	}
	projects, err := a.client.ErasmusProjects(ctx, filter)
	if err != nil {
		return err
	}
	for _, p := range projects {
		fmt.Printf("%4d  %-12s %-16s %s\n", p.ID, p.FacultySlug, p.Country, p.Title)
	}
	fmt.Printf("%d projects\n", len(projects))
	return nil
}

func (a *App) ShowErasmusProject(ctx context.Context, args []string) error {
	id, ok := parseID(args, "project <id>")
	if !ok {
		return nil
	}
	p, err := a.client.ErasmusProject(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("%s / %s, %s\n", p.Title, p.University, p.Country)
	fmt.Println(p.Description)
	if p.ApplicationDeadline != "" {
		fmt.Println("  deadline:", p.ApplicationDeadline)
	}
	if p.ContactEmail != "" {
		fmt.Println("  contact: ", p.ContactEmail)
	}
	return nil
}

func (a *App) promptErasmusDraft() (api.ErasmusDraft, error) {
	draft := api.ErasmusDraft{}
	var err error
	if draft.Title, err = getSimpleText(a.reader, "Title", os.Stdout); err != nil {
		return draft, err
	}
	if draft.Description, err = getMultiline(a.reader, "Description", os.Stdout); err != nil {
		return draft, err
	}
	if draft.FacultySlug, err = getSimpleText(a.reader, "Faculty slug", os.Stdout); err != nil {
		return draft, err
	}
	if draft.Country, err = getSimpleText(a.reader, "Country", os.Stdout); err != nil {
		return draft, err
	}
	if draft.University, err = getSimpleText(a.reader, "University", os.Stdout); err != nil {
		return draft, err
	}
	if draft.FieldOfStudy, err = getSimpleText(a.reader, "Field of study", os.Stdout); err != nil {
		return draft, err
	}
	if draft.ApplicationDeadline, err = getSimpleText(a.reader, "Application deadline (YYYY-MM-DD, optional)", os.Stdout); err != nil {
		return draft, err
	}
	return draft, nil
}

// AddErasmusProject creates a project (faculty accounts).
func (a *App) AddErasmusProject(ctx context.Context) error {
	draft, err := a.promptErasmusDraft()
	if err != nil {
		return err
	}
	p, err := a.client.CreateErasmusProject(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Printf("Created project %d: %s\n", p.ID, p.Title)
	return nil
}

// EditErasmusProject replaces a project's writable fields:
// editerasmus <id>.
func (a *App) EditErasmusProject(ctx context.Context, args []string) error {
	id, ok := parseID(args, "editerasmus <id>")
	if !ok {
		return nil
	}
	draft, err := a.promptErasmusDraft()
	if err != nil {
		return err
	}
	p, err := a.client.UpdateErasmusProject(ctx, id, draft)
	if err != nil {
		return err
	}
	fmt.Printf("Updated project %d\n", p.ID)
	return nil
}

func (a *App) DeleteErasmusProject(ctx context.Context, args []string) error {
	id, ok := parseID(args, "delerasmus <id>")
	if !ok {
		return nil
	}
	if err := a.client.DeleteErasmusProject(ctx, id); err != nil {
		return err
	}
	fmt.Printf("Deleted project %d\n", id)
	return nil
}
