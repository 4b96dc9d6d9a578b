package store

import (
	"time"

	"github.com/patrickmn/go-cache"

	"wearly-be/pkg/catalog"
)

// Session is the owned state for one client conversation: the assistant-side
// session id, the products currently on screen, which try-ons are running and
// the user's uploaded photo. Slices and maps held here are replaced as whole
// values on every update; concurrent completions simply overwrite each other
// (last writer wins).
type Session struct {
	Id string `json:"id"`

	// AssistantSessionId correlates turns on the remote backend. Empty until
	// the first successful chat establishes one; the backend may rotate it
	// mid-conversation and the newest returned value always wins.
	AssistantSessionId string `json:"assistant_session_id"`

	Products      []catalog.Product `json:"products"`
	TryOnInFlight map[string]bool   `json:"try_on_in_flight"`
	LastQuery     string            `json:"last_query"`

	// Uploaded photo state. SelectedPhoto is the optimistic marker a failed
	// upload must roll back; the id/url pair survives between page loads.
	SelectedPhoto string `json:"selected_photo"`
	UserImageId   string `json:"user_image_id"`
	UserImageURL  string `json:"user_image_url"`
}

// SessionStore keeps sessions in process memory with an idle TTL. Nothing is
// persisted; a session's lifetime is one conversation.
type SessionStore struct {
	cache *cache.Cache
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (s *SessionStore) Get(sessionID string) (*Session, bool) {
	if x, found := s.cache.Get(sessionID); found {
		return x.(*Session), true
	}
	return nil, false
}

// GetOrCreate returns the existing session or starts a fresh one under the
// given id.
func (s *SessionStore) GetOrCreate(sessionID string) *Session {
	if sess, found := s.Get(sessionID); found {
		return sess
	}
	sess := &Session{
		Id:            sessionID,
		TryOnInFlight: map[string]bool{},
	}
	s.Save(sess)
	return sess
}

func (s *SessionStore) Save(session *Session) {
	s.cache.Set(session.Id, session, cache.DefaultExpiration)
}

func (s *SessionStore) Delete(sessionID string) {
	s.cache.Delete(sessionID)
}
