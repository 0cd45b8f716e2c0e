package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mkresic/karijera/internal/client/api"
	"github.com/mkresic/karijera/internal/client/models"
	"github.com/mkresic/karijera/internal/client/services"
)

// Input helpers are indirected so tests can script them.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getList       = GetList
)

// Login prompts for credentials and authenticates. The AAI branch does not
// log anyone in: a terminal cannot finish a browser single-sign-on flow, so
// the user is handed the identity-provider URL instead.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.store.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		return err
	}
	if res.Outcome == api.LoginAAIRedirect {
		fmt.Println("This account signs in through AAI@EduHr. Open the following URL in a browser:")
		fmt.Println("  " + res.AAILoginURL)
		fmt.Println("then paste the token and user from the callback with: callback <token> <user>")
		return nil
	}
	fmt.Printf("Logged in as %s (%s)\n", res.User.DisplayName(), res.User.Role())
	return nil
}

// Register prompts for the sign-up fields. Employer and faculty accounts
// identify themselves by username; everyone else by first and last name.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Role (student/ucenik/alumni/employer/faculty)", os.Stdout)
	if err != nil {
		return err
	}

	reg := api.Registration{Email: email, Password: password, Role: models.Role(role)}
	switch models.Role(role) {
	case models.RoleEmployer, models.RoleFaculty:
		if reg.Username, err = getSimpleText(a.reader, "Username", os.Stdout); err != nil {
			return err
		}
	default:
		if reg.FirstName, err = getSimpleText(a.reader, "First name", os.Stdout); err != nil {
			return err
		}
		if reg.LastName, err = getSimpleText(a.reader, "Last name", os.Stdout); err != nil {
			return err
		}
		if reg.Interests, err = getList(a.reader, "Interests", os.Stdout); err != nil {
			return err
		}
	}

	res, err := a.store.Register(ctx, reg)
	if err != nil {
		return err
	}
	if res.Outcome == api.LoginAAIRedirect {
		fmt.Println("Registration for this address continues at AAI@EduHr:")
		fmt.Println("  " + res.AAILoginURL)
		return nil
	}
	fmt.Printf("Registered and logged in as %s\n", res.User.DisplayName())
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// WhoAmI prints the cached identity plus advisory token expiry.
func (a *App) WhoAmI(ctx context.Context) error {
	sess := a.store.Current()
	if sess.User == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s> role=%s id=%d\n", sess.User.DisplayName(), sess.User.Email, sess.User.Role(), sess.User.ID)
	if exp, ok := services.TokenExpiry(sess.Token); ok {
		fmt.Printf("token expires %s\n", exp.Format("2006-01-02 15:04"))
	}
	return nil
}

// Refresh re-fetches the identity. A rejected token ends the session, so
// the failure message doubles as a "you have been logged out" notice.
func (a *App) Refresh(ctx context.Context) error {
	user, err := a.store.RefreshUser(ctx)
	if errors.Is(err, services.ErrNotAuthenticated) {
		fmt.Println("Not logged in.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("session expired: %w", err)
	}
	fmt.Printf("Refreshed: %s (%s)\n", user.DisplayName(), user.Role())
	return nil
}

// GoogleLogin prints the OAuth entry URL and ingests the callback values.
func (a *App) GoogleLogin(ctx context.Context) error {
	fmt.Println("Open the following URL in a browser:")
	fmt.Println("  " + a.client.GoogleLoginURL())

	token, err := getSimpleText(a.reader, "Paste token from the callback (empty to abort)", os.Stdout)
	if err != nil || token == "" {
		return err
	}
	encodedUser, err := getSimpleText(a.reader, "Paste user parameter from the callback", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.store.IngestExternalToken(ctx, token, encodedUser); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", a.store.Current().User.DisplayName())
	return nil
}

// Callback ingests externally obtained credentials: the token and the
// URL-encoded user from an OAuth or AAI callback.
func (a *App) Callback(ctx context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Println("Usage: callback <token> <url-encoded-user>")
		return nil
	}
	if err := a.store.IngestExternalToken(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", a.store.Current().User.DisplayName())
	return nil
}
