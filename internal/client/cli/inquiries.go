package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mkresic/karijera/internal/client/api"
)

// SendInquiry sends a contact-form message to a faculty. Logged-in users get
// their identity prefilled; anonymous senders type it in.
func (a *App) SendInquiry(ctx context.Context) error {
	draft := api.InquiryDraft{}
	var err error
	if draft.FacultySlug, err = getSimpleText(a.reader, "Faculty slug", os.Stdout); err != nil {
		return err
	}

	if sess := a.store.Current(); sess.User != nil {
		draft.SenderName = sess.User.DisplayName()
		draft.SenderEmail = sess.User.Email
	} else {
		if draft.SenderName, err = getSimpleText(a.reader, "Your name", os.Stdout); err != nil {
			return err
		}
		if draft.SenderEmail, err = getSimpleText(a.reader, "Your email", os.Stdout); err != nil {
			return err
		}
	}

	if draft.Subject, err = getSimpleText(a.reader, "Subject", os.Stdout); err != nil {
		return err
	}
	if draft.Message, err = getMultiline(a.reader, "Message", os.Stdout); err != nil {
		return err
	}

	inq, err := a.client.SendInquiry(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Printf("Inquiry %d sent to %s\n", inq.ID, inq.FacultySlug)
	return nil
}

func (a *App) MyInquiries(ctx context.Context) error {
	inquiries, err := a.client.MyInquiries(ctx)
	if err != nil {
		return err
	}
	for _, inq := range inquiries {
		fmt.Printf("%4d  %-12s %-8s %s\n", inq.ID, inq.FacultySlug, inq.Status, inq.Subject)
	}
	fmt.Printf("%d inquiries\n", len(inquiries))
	return nil
}

// FacultyInquiries lists a faculty's inbox: inquiries <slug> [status].
func (a *App) FacultyInquiries(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Println("Usage: inquiries <faculty-slug> [pending|read|replied]")
		return nil
	}
	status := ""
	if len(args) > 1 {
		status = args[1]
	}
	inquiries, err := a.client.FacultyInquiries(ctx, args[0], status)
	if err != nil {
		return err
	}
	for _, inq := range inquiries {
		fmt.Printf("%4d  %-8s %-24s %s\n", inq.ID, inq.Status, inq.SenderEmail, inq.Subject)
	}
	fmt.Printf("%d inquiries\n", len(inquiries))
	return nil
}

func (a *App) MarkInquiryRead(ctx context.Context, args []string) error {
	id, ok := parseID(args, "readinquiry <id>")
	if !ok {
		return nil
	}
	if err := a.client.MarkInquiryRead(ctx, id); err != nil {
		return err
	}
	fmt.Println("Marked read.")
	return nil
}

func (a *App) ReplyToInquiry(ctx context.Context, args []string) error {
	id, ok := parseID(args, "reply <inquiry-id>")
	if !ok {
		return nil
	}
	message, err := getMultiline(a.reader, "Reply", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.client.ReplyToInquiry(ctx, id, message); err != nil {
		return err
	}
	fmt.Println("Reply sent.")
	return nil
}
