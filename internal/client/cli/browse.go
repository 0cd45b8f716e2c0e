package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkresic/karijera/internal/client/api"
)

// Search runs the cross-resource search: search <query> [faculty-slug].
func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: search <query> [faculty-slug]")
		return nil
	}
	faculty := ""
	if len(args) > 1 {
		faculty = args[len(args)-1]
		args = args[:len(args)-1]
	}
	res, err := a.client.Search(ctx, strings.Join(args, " "), faculty)
	if err != nil {
		return err
	}
	fmt.Printf("Faculties (%d):\n", len(res.Results.Faculties))
	for _, f := range res.Results.Faculties {
		fmt.Printf("  %-12s %s\n", f.Slug, f.Name)
	}
	fmt.Printf("Associations (%d):\n", len(res.Results.Associations))
	for _, as := range res.Results.Associations {
		fmt.Printf("  %-12s %s\n", as.Slug, as.Name)
	}
	return nil
}

func (a *App) Faculties(ctx context.Context, args []string) error {
	faculties, err := a.client.Faculties(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	for _, f := range faculties {
		fmt.Printf("%-12s %-6s %s\n", f.Slug, f.Type, f.Name)
	}
	fmt.Printf("%d faculties\n", len(faculties))
	return nil
}

func (a *App) ShowFaculty(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("Usage: faculty <slug>")
		return nil
	}
	f, err := a.client.Faculty(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n", f.Name, f.Abbreviation)
	if f.Contacts != nil {
		if f.Contacts.Email != "" {
			fmt.Println("  email:  ", f.Contacts.Email)
		}
		if f.Contacts.Phone != "" {
			fmt.Println("  phone:  ", f.Contacts.Phone)
		}
		if f.Contacts.Address != "" {
			fmt.Println("  address:", f.Contacts.Address)
		}
		if f.Contacts.Website != "" {
			fmt.Println("  website:", f.Contacts.Website)
		}
	}
	return nil
}

// Associations lists associations: associations [faculty-slug] [query...].
func (a *App) Associations(ctx context.Context, args []string) error {
	filter := api.AssociationFilter{}
	if len(args) > 0 {
		filter.Faculty = args[0]
		filter.Query = strings.Join(args[1:], " ")
	}
	items, err := a.client.Associations(ctx, filter)
	if err != nil {
		return err
	}
	for _, as := range items {
		fmt.Printf("%-16s %-10s %s\n", as.Slug, as.Faculty, as.Name)
	}
	fmt.Printf("%d associations\n", len(items))
	return nil
}

func (a *App) ShowAssociation(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("Usage: association <slug>")
		return nil
	}
	as, err := a.client.Association(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n", as.Name, as.Faculty)
	if as.ShortDescription != "" {
		fmt.Println(" ", as.ShortDescription)
	}
	if len(as.Tags) > 0 {
		fmt.Println("  tags:", strings.Join(as.Tags, ", "))
	}
	for name, link := range as.Links {
		fmt.Printf("  %s: %s\n", name, link)
	}
	return nil
}
