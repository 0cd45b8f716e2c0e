package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mkresic/karijera/internal/client/api"
	"github.com/mkresic/karijera/internal/client/models"
)

func parseID(args []string, usage string) (int64, bool) {
	if len(args) < 1 {
		fmt.Println("Usage:", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Usage:", usage)
		return 0, false
	}
	return id, true
}

// Jobs lists postings: jobs [type] [query...].
func (a *App) Jobs(ctx context.Context, args []string) error {
	filter := api.JobFilter{}
	if len(args) > 0 {
		switch models.JobType(args[0]) {
		case models.JobTypeInternship, models.JobTypeJob, models.JobTypePartTime, models.JobTypeRemote:
			filter.Type = models.JobType(args[0])
			args = args[1:]
		}
		filter.Query = strings.Join(args, " ")
	}
	jobs, err := a.client.Jobs(ctx, filter)
	if err != nil {
		return err
	}
	for _, j := range jobs {
		fmt.Printf("%4d  %-10s %-24s %s\n", j.ID, j.Type, j.Company, j.Title)
	}
	fmt.Printf("%d postings\n", len(jobs))
	return nil
}

func (a *App) ShowJob(ctx context.Context, args []string) error {
	id, ok := parseID(args, "job <id>")
	if !ok {
		return nil
	}
	j, err := a.client.Job(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("%s / %s (%s)\n", j.Title, j.Company, j.Type)
	if j.Location != "" {
		fmt.Println("  location:", j.Location)
	}
	if j.Salary != "" {
		fmt.Println("  salary:  ", j.Salary)
	}
	fmt.Println(j.Description)
	if len(j.Requirements) > 0 {
		fmt.Println("  requirements:", strings.Join(j.Requirements, "; "))
	}
	return nil
}

// AddJob interactively creates a posting (employer accounts).
func (a *App) AddJob(ctx context.Context) error {
	draft := api.JobDraft{}
	var err error
	if draft.Title, err = getSimpleText(a.reader, "Title", os.Stdout); err != nil {
		return err
	}
	if draft.Description, err = getMultiline(a.reader, "Description", os.Stdout); err != nil {
		return err
	}
	jobType, err := getSimpleText(a.reader, "Type (internship/job/part-time/remote)", os.Stdout)
	if err != nil {
		return err
	}
	draft.Type = models.JobType(jobType)
	if draft.Location, err = getSimpleText(a.reader, "Location", os.Stdout); err != nil {
		return err
	}
	if draft.Salary, err = getSimpleText(a.reader, "Salary", os.Stdout); err != nil {
		return err
	}
	if draft.Requirements, err = getList(a.reader, "Requirements", os.Stdout); err != nil {
		return err
	}
	if draft.Tags, err = getList(a.reader, "Tags", os.Stdout); err != nil {
		return err
	}

	job, err := a.client.CreateJob(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Printf("Created posting %d: %s\n", job.ID, job.Title)
	return nil
}

// Apply submits an application: apply <job-id>.
func (a *App) Apply(ctx context.Context, args []string) error {
	id, ok := parseID(args, "apply <job-id>")
	if !ok {
		return nil
	}
	message, err := getMultiline(a.reader, "Message to the employer (optional)", os.Stdout)
	if err != nil {
		return err
	}
	app, err := a.client.Apply(ctx, id, message)
	if err != nil {
		return err
	}
	fmt.Printf("Application %d submitted (%s)\n", app.ID, app.Status)
	return nil
}

// Applications lists applications: mine by default, a posting's applicants
// when a job id is given.
func (a *App) Applications(ctx context.Context, args []string) error {
	var jobID int64
	if len(args) > 0 {
		id, ok := parseID(args, "applications [job-id]")
		if !ok {
			return nil
		}
		jobID = id
	}
	apps, err := a.client.Applications(ctx, jobID)
	if err != nil {
		return err
	}
	for _, ap := range apps {
		title := ""
		if ap.Job != nil {
			title = ap.Job.Title
		}
		fmt.Printf("%4d  job=%-4d %-9s %-24s %s\n", ap.ID, ap.JobID, ap.Status, ap.UserEmail, title)
	}
	fmt.Printf("%d applications\n", len(apps))
	return nil
}

// UpdateApplicationStatus reviews an application:
// appstatus <application-id> <pending|approved|rejected>.
func (a *App) UpdateApplicationStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Println("Usage: appstatus <application-id> <pending|approved|rejected>")
		return nil
	}
	id, ok := parseID(args, "appstatus <application-id> <status>")
	if !ok {
		return nil
	}
	app, err := a.client.UpdateApplicationStatus(ctx, id, models.ApplicationStatus(args[1]))
	if err != nil {
		return err
	}
	fmt.Printf("Application %d is now %s\n", app.ID, app.Status)
	return nil
}

// EmailApplicant sends a message through the backend's mail relay:
// appemail <application-id>.
func (a *App) EmailApplicant(ctx context.Context, args []string) error {
	id, ok := parseID(args, "appemail <application-id>")
	if !ok {
		return nil
	}
	subject, err := getSimpleText(a.reader, "Subject", os.Stdout)
	if err != nil {
		return err
	}
	message, err := getMultiline(a.reader, "Message", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.client.EmailApplicant(ctx, id, subject, message); err != nil {
		return err
	}
	fmt.Println("E-mail sent.")
	return nil
}
