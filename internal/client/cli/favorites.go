package cli

import (
	"context"
	"fmt"
)

func (a *App) Favorites(ctx context.Context) error {
	favorites, err := a.client.FavoriteFaculties(ctx)
	if err != nil {
		return err
	}
	for _, f := range favorites {
		name := ""
		if f.Faculty != nil {
			name = f.Faculty.Name
		}
		fmt.Printf("  %-12s %s\n", f.FacultySlug, name)
	}
	fmt.Printf("%d favorites\n", len(favorites))
	return nil
}

func (a *App) AddFavorite(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("Usage: fav <faculty-slug>")
		return nil
	}
	if _, err := a.client.AddFavoriteFaculty(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Added to favorites.")
	return nil
}

func (a *App) RemoveFavorite(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("Usage: unfav <faculty-slug>")
		return nil
	}
	if err := a.client.RemoveFavoriteFaculty(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Removed from favorites.")
	return nil
}

func (a *App) CheckFavorite(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("Usage: isfav <faculty-slug>")
		return nil
	}
	favorite, err := a.client.IsFavoriteFaculty(ctx, args[0])
	if err != nil {
		return err
	}
	if favorite {
		fmt.Println("yes")
	} else {
		fmt.Println("no")
	}
	return nil
}
