// Package metadata is the durable client-side storage: a small key-value
// table in the local sqlite database. It caches the bearer token, the
// serialized user snapshot, and the active chatbot session id across process
// restarts. The cache is never authoritative; the session store re-validates
// it against the backend on startup.
package metadata

import "context"

// Keys used by the session store and the chatbot command.
const (
	KeyToken       = "token"
	KeyUser        = "user"
	KeyChatSession = "chatbot_session"
)

// Repository is the storage contract. Values are opaque strings; the token
// and user entries are always written and cleared together by the caller,
// inside one transaction.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
