package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/mkresic/karijera/internal/client/api"
	"github.com/mkresic/karijera/internal/client/models"
)

// AddAssociation creates an association (faculty accounts).
func (a *App) AddAssociation(ctx context.Context) error {
	draft := api.AssociationDraft{}
	var err error
	if draft.Name, err = getSimpleText(a.reader, "Name", os.Stdout); err != nil {
		return err
	}
	if draft.Faculty, err = getSimpleText(a.reader, "Faculty slug", os.Stdout); err != nil {
		return err
	}
	if draft.ShortDescription, err = getSimpleText(a.reader, "Short description", os.Stdout); err != nil {
		return err
	}
	if draft.Description, err = getMultiline(a.reader, "Description (optional)", os.Stdout); err != nil {
		return err
	}
	if draft.Tags, err = getList(a.reader, "Tags", os.Stdout); err != nil {
		return err
	}

	as, err := a.client.CreateAssociation(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Printf("Created association %s (%d)\n", as.Slug, as.ID)
	return nil
}

// Admin dispatches the management subcommands. The backend rejects
// non-admin tokens, so there is no client-side gate beyond the prompt.
func (a *App) Admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println(`Usage: admin <subcommand>
  faculties                 list all faculties
  addfaculty                create a faculty
  updfaculty <slug>         update a faculty
  delfaculty <slug>         delete a faculty
  associations              list all associations
  updassoc <id>             update an association
  delassoc <id>             delete an association`)
		return nil
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "faculties":
		faculties, err := a.client.AdminFaculties(ctx)
		if err != nil {
			return err
		}
		for _, f := range faculties {
			fmt.Printf("%-12s %-6s %s\n", f.Slug, f.Type, f.Name)
		}
		fmt.Printf("%d faculties\n", len(faculties))
		return nil

	case "addfaculty":
		draft, err := a.promptFacultyDraft()
		if err != nil {
			return err
		}
		f, err := a.client.AdminCreateFaculty(ctx, draft)
		if err != nil {
			return err
		}
		fmt.Printf("Created faculty %s\n", f.Slug)
		return nil

	case "updfaculty":
		if len(rest) != 1 {
			fmt.Println("Usage: admin updfaculty <slug>")
			return nil
		}
		draft, err := a.promptFacultyDraft()
		if err != nil {
			return err
		}
		f, err := a.client.AdminUpdateFaculty(ctx, rest[0], draft)
		if err != nil {
			return err
		}
		fmt.Printf("Updated faculty %s\n", f.Slug)
		return nil

	case "delfaculty":
		if len(rest) != 1 {
			fmt.Println("Usage: admin delfaculty <slug>")
			return nil
		}
		if err := a.client.AdminDeleteFaculty(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil

	case "associations":
		items, err := a.client.AdminAssociations(ctx)
		if err != nil {
			return err
		}
		for _, as := range items {
			fmt.Printf("%4d  %-16s %-10s %s\n", as.ID, as.Slug, as.Faculty, as.Name)
		}
		fmt.Printf("%d associations\n", len(items))
		return nil

	case "updassoc":
		if len(rest) != 1 {
			fmt.Println("Usage: admin updassoc <id>")
			return nil
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			fmt.Println("Usage: admin updassoc <id>")
			return nil
		}
		draft := api.AssociationDraft{}
		if draft.Name, err = getSimpleText(a.reader, "Name", os.Stdout); err != nil {
			return err
		}
		if draft.Faculty, err = getSimpleText(a.reader, "Faculty slug", os.Stdout); err != nil {
			return err
		}
		if draft.ShortDescription, err = getSimpleText(a.reader, "Short description", os.Stdout); err != nil {
			return err
		}
		as, err := a.client.AdminUpdateAssociation(ctx, id, draft)
		if err != nil {
			return err
		}
		fmt.Printf("Updated association %s\n", as.Slug)
		return nil

	case "delassoc":
		if len(rest) != 1 {
			fmt.Println("Usage: admin delassoc <id>")
			return nil
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			fmt.Println("Usage: admin delassoc <id>")
			return nil
		}
		if err := a.client.AdminDeleteAssociation(ctx, id); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil

	default:
		fmt.Println("Unknown admin subcommand:", sub)
		return nil
	}
}

func (a *App) promptFacultyDraft() (api.FacultyDraft, error) {
	draft := api.FacultyDraft{}
	var err error
	if draft.Name, err = getSimpleText(a.reader, "Name", os.Stdout); err != nil {
		return draft, err
	}
	facultyType, err := getSimpleText(a.reader, "Type (faculty/academy)", os.Stdout)
	if err != nil {
		return draft, err
	}
	draft.Type = models.FacultyType(facultyType)
	if draft.Abbreviation, err = getSimpleText(a.reader, "Abbreviation (optional)", os.Stdout); err != nil {
		return draft, err
	}
	if draft.Email, err = getSimpleText(a.reader, "Contact email (optional)", os.Stdout); err != nil {
		return draft, err
	}
	if draft.Website, err = getSimpleText(a.reader, "Website (optional)", os.Stdout); err != nil {
		return draft, err
	}
	return draft, nil
}
