package controller

import (
	"github.com/google/uuid"

	"wearly-be/internal/store"
)

// resolveSession looks the client's session up, minting a fresh id when the
// request carried none (the first bootstrap call has no session yet).
func resolveSession(sessions *store.SessionStore, sessionID string) *store.Session {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	return sessions.GetOrCreate(sessionID)
}
