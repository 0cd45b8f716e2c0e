package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendChatMessage_NewConversation(t *testing.T) {
	c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chatbot/send", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "what can I study at FER?", body["message"])
		_, hasSession := body["session_id"]
		require.False(t, hasSession, "empty session id must be omitted")

		writeJSON(t, w, http.StatusOK, map[string]any{
			"success":    true,
			"message":    "FER offers computing and electrical engineering.",
			"session_id": "sess-1",
		})
	})

	reply, err := c.SendChatMessage(context.Background(), "", "what can I study at FER?")
	require.NoError(t, err)
	require.Equal(t, "sess-1", reply.SessionID)
	require.NotEmpty(t, reply.Message)
}

func TestSendChatMessage_ContinuesSession(t *testing.T) {
	c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "sess-1", body["session_id"])

		writeJSON(t, w, http.StatusOK, map[string]any{
			"success":    true,
			"message":    "Anything else?",
			"session_id": "sess-1",
		})
	})

	reply, err := c.SendChatMessage(context.Background(), "sess-1", "thanks")
	require.NoError(t, err)
	require.Equal(t, "sess-1", reply.SessionID)
}

func TestChatSessionLifecycle(t *testing.T) {
	c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/chatbot/session":
			writeJSON(t, w, http.StatusOK, map[string]any{"success": true, "session_id": "sess-9"})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/chatbot/session/sess-9":
			writeJSON(t, w, http.StatusOK, map[string]any{"success": true})
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	sess, err := c.CreateChatSession(context.Background())
	require.NoError(t, err)
	require.Equal(t, "sess-9", sess.SessionID)

	require.NoError(t, c.DeleteChatSession(context.Background(), "sess-9"))
}

func TestChatHistory(t *testing.T) {
	c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chatbot/history", r.URL.Path)
		require.Equal(t, "sess-1", r.URL.Query().Get("session_id"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"messages": []map[string]string{
				{"role": "user", "message": "hi"},
				{"role": "assistant", "message": "hello"},
			},
		})
	})

	history, err := c.ChatHistory(context.Background(), "sess-1")
	require.NoError(t, err)
	require.Len(t, history.Messages, 2)
	require.Equal(t, "assistant", history.Messages[1].Role)
}
