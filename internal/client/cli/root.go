package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	sess := a.store.Current()
	if sess.User == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", sess.User.DisplayName(), sess.User.Role())
}

const helpGuest = `Available commands:
  login, register, google, callback, search, faculties, faculty,
  associations, association, jobs, job, erasmus, project, inquiry,
  chat, history, exit`

const helpUser = `Available commands:
  whoami, refresh, logout
  search, faculties, faculty, associations, association
  jobs, job, apply, applications, appstatus, appemail, addjob
  erasmus, project, adderasmus, editerasmus, delerasmus
  favorites, fav, unfav, isfav
  inquiry, myinquiries, inquiries, readinquiry, reply
  chat, history, chatreset
  addassoc, admin
  exit`

// Root runs the command loop. Commands print their own results; errors are
// reported here so each handler stays a straight call-and-print.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Karijera portal client (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("karijera %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Println("Bye!")
			return
		}
		if err := a.dispatch(ctx, cmd, args); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			fmt.Println(helpUser)
		} else {
			fmt.Println(helpGuest)
		}
		return nil

	// Session.
	case "login":
		return a.Login(ctx)
	case "register":
		return a.Register(ctx)
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.WhoAmI(ctx)
	case "refresh":
		return a.Refresh(ctx)
	case "google":
		return a.GoogleLogin(ctx)
	case "callback":
		return a.Callback(ctx, args)

	// Catalog.
	case "search":
		return a.Search(ctx, args)
	case "faculties":
		return a.Faculties(ctx, args)
	case "faculty":
		return a.ShowFaculty(ctx, args)
	case "associations":
		return a.Associations(ctx, args)
	case "association":
		return a.ShowAssociation(ctx, args)

	// Jobs.
	case "jobs":
		return a.Jobs(ctx, args)
	case "job":
		return a.ShowJob(ctx, args)
	case "addjob":
		return a.AddJob(ctx)
	case "apply":
		return a.Apply(ctx, args)
	case "applications":
		return a.Applications(ctx, args)
	case "appstatus":
		return a.UpdateApplicationStatus(ctx, args)
	case "appemail":
		return a.EmailApplicant(ctx, args)

	// Erasmus.
	case "erasmus":
		return a.ErasmusProjects(ctx, args)
	case "project":
		return a.ShowErasmusProject(ctx, args)
	case "adderasmus":
		return a.AddErasmusProject(ctx)
	case "editerasmus":
		return a.EditErasmusProject(ctx, args)
	case "delerasmus":
		return a.DeleteErasmusProject(ctx, args)

	// Favorites.
	case "favorites":
		return a.Favorites(ctx)
	case "fav":
		return a.AddFavorite(ctx, args)
	case "unfav":
		return a.RemoveFavorite(ctx, args)
	case "isfav":
		return a.CheckFavorite(ctx, args)

	// Inquiries.
	case "inquiry":
		return a.SendInquiry(ctx)
	case "myinquiries":
		return a.MyInquiries(ctx)
	case "inquiries":
		return a.FacultyInquiries(ctx, args)
	case "readinquiry":
		return a.MarkInquiryRead(ctx, args)
	case "reply":
		return a.ReplyToInquiry(ctx, args)

	// Chatbot.
	case "chat":
		return a.Chat(ctx, args)
	case "history":
		return a.ChatHistory(ctx)
	case "chatreset":
		return a.ChatReset(ctx)

	// Management.
	case "addassoc":
		return a.AddAssociation(ctx)
	case "admin":
		return a.Admin(ctx, args)

	default:
		fmt.Println("Unknown command:", cmd)
		return nil
	}
}
