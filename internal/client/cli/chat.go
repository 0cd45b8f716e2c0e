package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mkresic/karijera/internal/client/repositories/metadata"
)

// chatSessionID returns the cached conversation id, which may be empty for
// a fresh conversation.
func (a *App) chatSessionID(ctx context.Context) string {
	id, err := metadata.NewSQLiteRepository(a.db).Get(ctx, metadata.KeyChatSession)
	if err != nil {
		a.log.Warn(ctx, "reading chat session id", "error", err)
		return ""
	}
	return id
}

// Chat sends one message, or enters a conversation loop when called without
// arguments. The backend assigns the session id on the first message; it is
// cached so the conversation survives restarts.
func (a *App) Chat(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return a.chatSend(ctx, strings.Join(args, " "))
	}

	fmt.Println("Chat with the career assistant (empty line to leave)")
	for {
		line, err := getSimpleText(a.reader, "", os.Stdout)
		if err != nil || line == "" {
			return err
		}
		if err := a.chatSend(ctx, line); err != nil {
			return err
		}
	}
}

func (a *App) chatSend(ctx context.Context, message string) error {
	reply, err := a.client.SendChatMessage(ctx, a.chatSessionID(ctx), message)
	if err != nil {
		return err
	}
	if reply.SessionID != "" {
		if err := metadata.NewSQLiteRepository(a.db).Set(ctx, metadata.KeyChatSession, reply.SessionID); err != nil {
			a.log.Warn(ctx, "caching chat session id", "error", err)
		}
	}
	fmt.Println(reply.Message)
	return nil
}

func (a *App) ChatHistory(ctx context.Context) error {
	history, err := a.client.ChatHistory(ctx, a.chatSessionID(ctx))
	if err != nil {
		return err
	}
	for _, m := range history.Messages {
		fmt.Printf("[%s] %s\n", m.Role, m.Message)
	}
	fmt.Printf("%d messages\n", len(history.Messages))
	return nil
}

// ChatReset deletes the server-side conversation and forgets the cached id.
func (a *App) ChatReset(ctx context.Context) error {
	id := a.chatSessionID(ctx)
	if id == "" {
		fmt.Println("No active conversation.")
		return nil
	}
	if err := a.client.DeleteChatSession(ctx, id); err != nil {
		a.log.Warn(ctx, "deleting remote chat session", "error", err)
	}
	if err := metadata.NewSQLiteRepository(a.db).Delete(ctx, metadata.KeyChatSession); err != nil {
		return err
	}
	fmt.Println("Conversation reset.")
	return nil
}
