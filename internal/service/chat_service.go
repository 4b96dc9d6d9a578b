package service

import (
	"context"
	"fmt"

	"wearly-be/internal/dto"
	"wearly-be/internal/mapper"
	"wearly-be/internal/pkg/logger"
	"wearly-be/internal/store"
	"wearly-be/pkg/catalog"
	"wearly-be/pkg/stylist"
)

// fallbackReply is shown when the assistant backend cannot be reached and the
// product list had to be synthesized locally.
const fallbackReply = "I couldn't reach the assistant right now, so here are some simulated recommendations."

// IChatService orchestrates one search turn. Search never fails: any
// upstream error is absorbed and answered with simulated results.
type IChatService interface {
	Search(ctx context.Context, sess *store.Session, query string) *dto.ChatResponse
}

type chatService struct {
	stylist  *stylist.Client
	sessions *store.SessionStore
	logger   logger.ILogger
}

func NewChatService(stylistClient *stylist.Client, sessions *store.SessionStore, sysLogger logger.ILogger) IChatService {
	return &chatService{
		stylist:  stylistClient,
		sessions: sessions,
		logger:   sysLogger,
	}
}

func (s *chatService) Search(ctx context.Context, sess *store.Session, query string) *dto.ChatResponse {
	result, err := s.stylist.Chat(ctx, query, sess.AssistantSessionId)
	if err != nil {
		s.logger.Warn("chat", "assistant unreachable, serving simulated results", map[string]interface{}{
			"error": err.Error(),
			"query": query,
		})

		products := catalog.GenerateMockProducts(query)
		sess.Products = products
		sess.LastQuery = query
		s.sessions.Save(sess)

		return &dto.ChatResponse{
			Reply:     fallbackReply,
			SessionId: sess.Id,
			Simulated: true,
			Products:  products,
		}
	}

	// The backend may rotate the session mid-conversation; always follow the
	// most recently returned id. A stale in-flight reply can still adopt an
	// older id (see DESIGN.md).
	if result.SessionId != "" && result.SessionId != sess.AssistantSessionId {
		s.logger.Info("chat", "session updated", map[string]interface{}{
			"session_id": result.SessionId,
		})
		sess.AssistantSessionId = result.SessionId
	}

	reply := result.Reply
	if reply == "" {
		reply = fmt.Sprintf("I received your search for %q. Preparing recommendations.", query)
	}

	products := mapper.ToProducts(result.SearchResults)
	sess.Products = products
	sess.LastQuery = query
	s.sessions.Save(sess)

	return &dto.ChatResponse{
		Reply:     reply,
		SessionId: sess.Id,
		Products:  products,
	}
}
