package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wearly-be/internal/store"
	"wearly-be/pkg/stylist"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestSession(sessions *store.SessionStore) *store.Session {
	return sessions.GetOrCreate("client-1")
}

func TestSearchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response":  "Found some options",
			"sessionId": "assistant-1",
			"searchResults": []map[string]interface{}{
				{"title": "Trail Runner", "price": 75.0, "product_url": "https://shop/p1", "store": "ASOS", "color": "Red", "size": "42", "garmentType": "Shoes"},
			},
		})
	}))
	defer srv.Close()

	sessions := store.NewSessionStore(time.Hour)
	sess := newTestSession(sessions)
	svc := NewChatService(stylist.NewClient(srv.URL), sessions, nopLogger{})

	res := svc.Search(context.Background(), sess, "red shoes under 80")

	assert.Equal(t, "Found some options", res.Reply)
	assert.False(t, res.Simulated)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "Trail Runner", res.Products[0].Name)

	// Session affinity: the returned assistant id is adopted and stored.
	stored, found := sessions.Get(sess.Id)
	require.True(t, found)
	assert.Equal(t, "assistant-1", stored.AssistantSessionId)
	assert.Equal(t, "red shoes under 80", stored.LastQuery)
}

func TestSearchAdoptsRotatedSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response":      "ok",
			"sessionId":     "assistant-2",
			"searchResults": []map[string]interface{}{},
		})
	}))
	defer srv.Close()

	sessions := store.NewSessionStore(time.Hour)
	sess := newTestSession(sessions)
	sess.AssistantSessionId = "assistant-1"
	sessions.Save(sess)

	svc := NewChatService(stylist.NewClient(srv.URL), sessions, nopLogger{})
	svc.Search(context.Background(), sess, "anything")

	assert.Equal(t, "assistant-2", sess.AssistantSessionId)
}

func TestSearchEmptyResultsDefaultReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No reply text, no results.
		json.NewEncoder(w).Encode(map[string]interface{}{
			"sessionId":     "assistant-1",
			"searchResults": []map[string]interface{}{},
		})
	}))
	defer srv.Close()

	sessions := store.NewSessionStore(time.Hour)
	sess := newTestSession(sessions)
	svc := NewChatService(stylist.NewClient(srv.URL), sessions, nopLogger{})

	res := svc.Search(context.Background(), sess, "red shoes under 80")

	assert.Contains(t, res.Reply, "red shoes under 80")
	assert.NotNil(t, res.Products)
	assert.Empty(t, res.Products)
	assert.False(t, res.Simulated)
}

func TestSearchFallsBackOnTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // unreachable backend

	sessions := store.NewSessionStore(time.Hour)
	sess := newTestSession(sessions)
	svc := NewChatService(stylist.NewClient(srv.URL), sessions, nopLogger{})

	res := svc.Search(context.Background(), sess, "blue pants under 50")

	// Never fails: simulated substitutes instead.
	assert.True(t, res.Simulated)
	assert.GreaterOrEqual(t, len(res.Products), 8)
	assert.LessOrEqual(t, len(res.Products), 12)
	for _, p := range res.Products {
		assert.Equal(t, "Blue", p.Color)
		assert.Equal(t, "Pants", p.Category)
		assert.Less(t, p.Price, float64(50))
	}

	// No session was adopted on failure.
	assert.Empty(t, sess.AssistantSessionId)
}

func TestSearchFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	sessions := store.NewSessionStore(time.Hour)
	sess := newTestSession(sessions)
	svc := NewChatService(stylist.NewClient(srv.URL), sessions, nopLogger{})

	res := svc.Search(context.Background(), sess, "green jackets")

	assert.True(t, res.Simulated)
	assert.GreaterOrEqual(t, len(res.Products), 8)
	assert.LessOrEqual(t, len(res.Products), 12)

	// The fallback list still replaces the session's products wholesale.
	stored, _ := sessions.Get(sess.Id)
	assert.Equal(t, res.Products, stored.Products)
}
